package channel

import "fmt"

// Key is the logical purpose a destination channel is bound to.
type Key string

const (
	KeyBirthday Key = "BIRTHDAY_CHANNEL" // daily and monthly birthday announcements
	KeyLogs     Key = "LOGS_CHANNEL"     // operational failure notices
)

// Keys lists every supported key.
var Keys = []Key{KeyBirthday, KeyLogs}

// ParseKey validates s against the supported keys.
func ParseKey(s string) (Key, error) {
	for _, k := range Keys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown channel key %q", s)
}
