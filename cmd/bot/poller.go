package main

import (
	"context"
	"fmt"
)

// poller is the part of *telebot.Bot that drives update polling.
type poller interface {
	Start()
	Stop()
}

// runPoller closes ready as the poller starts and blocks until it stops.
// The poller is stopped when ctx ends; stopping for any other reason is an error.
func runPoller(ctx context.Context, p poller, ready chan<- struct{}) error {
	go func() {
		<-ctx.Done()
		p.Stop()
	}()
	// NewBot already verified the token with getMe and handlers are registered,
	// so scheduled sends may begin once polling starts.
	close(ready)
	p.Start()
	if ctx.Err() == nil {
		return fmt.Errorf("telegram poller stopped unexpectedly")
	}
	return nil
}
