// Package actions holds the OS and web side-effect adapters. Every adapter
// returns a user-facing status string and never lets an internal failure
// escape as an error the engine would have to handle; the worst outcome is an
// apologetic message.
package actions

import (
	"lyra/pkg/notifications"
)

type Adapter struct {
	notifier      notifications.Notifier
	screenshotDir string
}

func NewAdapter(notifier notifications.Notifier, screenshotDir string) *Adapter {
	return &Adapter{
		notifier:      notifier,
		screenshotDir: screenshotDir,
	}
}
