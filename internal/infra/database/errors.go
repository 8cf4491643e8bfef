package database

import "errors"

// ErrStorageFault wraps every failure of the underlying database. Callers that need to tell
// "empty" apart from "failed" check for it with errors.Is.
var ErrStorageFault = errors.New("storage fault")

// ErrInvalidDriver is returned for an unsupported database driver name.
var ErrInvalidDriver = errors.New("unsupported database driver")
