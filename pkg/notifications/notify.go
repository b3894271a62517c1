package notifications

import (
	"log"

	"github.com/gen2brain/beeep"
	"github.com/sqweek/dialog"
)

type Notifier interface {
	Popup(title, message string) error
	Notify(title, message string) error
}

type DesktopNotifier struct{}

func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

// Popup shows a modal message box.
func (n *DesktopNotifier) Popup(title, message string) error {
	log.Printf("NOTIFICATION (Popup): Title='%s', Message='%.30s...'", title, message)
	dialog.Message("%s", message).Title(title).Info()
	return nil
}

// Notify sends a non-blocking desktop toast.
func (n *DesktopNotifier) Notify(title, message string) error {
	log.Printf("NOTIFICATION (Notify): Title='%s', Message='%.30s...'", title, message)
	return beeep.Notify(title, message, "")
}
