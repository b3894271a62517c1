package actions

import (
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-vgo/robotgo"

	"lyra/pkg/commands"
)

const volumeStep = 10 // percent

// Screenshot captures the full screen to a timestamped PNG and returns the
// saved path.
func (a *Adapter) Screenshot() (string, error) {
	filename := fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405"))
	savePath := filepath.Join(a.screenshotDir, filename)

	img, err := robotgo.CaptureImg()
	if err != nil {
		return "", fmt.Errorf("screen capture failed: %w", err)
	}
	if err := robotgo.Save(img, savePath); err != nil {
		return "", fmt.Errorf("saving screenshot failed: %w", err)
	}

	log.Printf("ACTION: screenshot saved as %s", savePath)
	a.notify("Screenshot", "Saved as "+filename)
	return savePath, nil
}

func (a *Adapter) VolumeUp() error {
	return a.changeVolume(volumeStep)
}

func (a *Adapter) VolumeDown() error {
	return a.changeVolume(-volumeStep)
}

func (a *Adapter) changeVolume(step int) error {
	sign := "+"
	if step < 0 {
		sign = "-"
		step = -step
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("set volume output volume ((output volume of (get volume settings)) %s %d)", sign, step)
		cmd = exec.Command("osascript", "-e", script)
	case "windows":
		// nircmd scale: 65535 is full volume
		delta := step * 655
		if sign == "-" {
			delta = -delta
		}
		cmd = exec.Command("nircmd.exe", "changesysvolume", fmt.Sprintf("%d", delta))
	default:
		sink := "@DEFAULT_SINK@"
		if name, err := commands.GetDefaultSinkName(); err == nil && name != "" {
			sink = name
		}
		cmd = exec.Command("pactl", "set-sink-volume", sink, fmt.Sprintf("%s%d%%", sign, step))
	}
	return commands.RunCommand(cmd)
}

func (a *Adapter) BrightnessUp() error {
	return a.changeBrightness("+10%", "10")
}

func (a *Adapter) BrightnessDown() error {
	return a.changeBrightness("10%-", "-10")
}

func (a *Adapter) changeBrightness(linuxArg, windowsStep string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		script := fmt.Sprintf("(Get-WmiObject -Namespace root/WMI -Class WmiMonitorBrightnessMethods).WmiSetBrightness(1,%s)", windowsStep)
		cmd = exec.Command("powershell", script)
	case "darwin":
		// no stock CLI for brightness on macOS; relies on the common helper
		cmd = exec.Command("brightness", linuxArg)
	default:
		cmd = exec.Command("brightnessctl", "set", linuxArg)
	}
	return commands.RunCommand(cmd)
}

func (a *Adapter) LockPC() error {
	a.notify("Lyra", "Locking your computer")
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32.exe", "user32.dll,LockWorkStation")
	case "darwin":
		cmd = exec.Command("pmset", "displaysleepnow")
	default:
		cmd = exec.Command("loginctl", "lock-session")
	}
	return commands.RunCommand(cmd)
}

func (a *Adapter) ShutdownPC() error {
	a.notify("Lyra", "Shutting down")
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("shutdown", "/s", "/t", "0")
	case "darwin":
		cmd = exec.Command("osascript", "-e", `tell app "System Events" to shut down`)
	default:
		cmd = exec.Command("systemctl", "poweroff")
	}
	return commands.RunCommand(cmd)
}

func (a *Adapter) RestartPC() error {
	a.notify("Lyra", "Restarting")
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("shutdown", "/r", "/t", "0")
	case "darwin":
		cmd = exec.Command("osascript", "-e", `tell app "System Events" to restart`)
	default:
		cmd = exec.Command("systemctl", "reboot")
	}
	return commands.RunCommand(cmd)
}

func (a *Adapter) notify(title, message string) {
	if a.notifier == nil {
		return
	}
	if err := a.notifier.Notify(title, message); err != nil {
		log.Printf("ACTION: notification failed: %v", err)
	}
}
