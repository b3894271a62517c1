package actions

import (
	"log"
	"os/exec"
	"runtime"
	"strings"

	"lyra/pkg/commands"
)

// commandMap maps a canonical application to its multilingual trigger words.
// Matching mirrors the intent classifier: raw substrings, no tokenization.
var commandMap = map[string][]string{
	"notepad":    {"notepad", "editor", "पैड", "bloc de notas", "bloc-notes", "ಬ್ಲಾಕ್ ನೋಟ್ಸ್"},
	"calculator": {"calculator", "calc", "गणना", "calculadora", "calculatrice", "ಕ್ಯಾಲ್ಕುಲೇಟರ್"},
	"browser":    {"chrome", "browser", "ब्राउज़र", "navegador", "navigateur", "ಬ್ರೌಸರ್"},
	"explorer":   {"explorer", "files", "फाइल", "explorador", "explorateur"},
	"terminal":   {"cmd", "command prompt", "terminal", "कमांड", "consola", "invite"},
}

// appOrder fixes the matching priority so results do not depend on map
// iteration order.
var appOrder = []string{"notepad", "calculator", "browser", "explorer", "terminal"}

type appCommands struct {
	open  []string
	close []string
	name  string
}

func platformCommands(app string) appCommands {
	switch runtime.GOOS {
	case "windows":
		switch app {
		case "notepad":
			return appCommands{[]string{"cmd", "/c", "start", "notepad"}, []string{"taskkill", "/f", "/im", "notepad.exe"}, "Notepad"}
		case "calculator":
			return appCommands{[]string{"cmd", "/c", "start", "calc"}, []string{"taskkill", "/f", "/im", "Calculator.exe"}, "Calculator"}
		case "browser":
			return appCommands{[]string{"cmd", "/c", "start", "https://www.google.com"}, []string{"taskkill", "/f", "/im", "chrome.exe"}, "Browser"}
		case "explorer":
			return appCommands{[]string{"cmd", "/c", "start", "explorer"}, []string{"taskkill", "/f", "/im", "explorer.exe"}, "File Explorer"}
		case "terminal":
			return appCommands{[]string{"cmd", "/c", "start", "cmd"}, []string{"taskkill", "/f", "/im", "cmd.exe"}, "Command Prompt"}
		}
	case "darwin":
		switch app {
		case "notepad":
			return appCommands{[]string{"open", "-a", "TextEdit"}, []string{"pkill", "-x", "TextEdit"}, "TextEdit"}
		case "calculator":
			return appCommands{[]string{"open", "-a", "Calculator"}, []string{"pkill", "-x", "Calculator"}, "Calculator"}
		case "browser":
			return appCommands{[]string{"open", "https://www.google.com"}, []string{"pkill", "-x", "Google Chrome"}, "Browser"}
		case "explorer":
			return appCommands{[]string{"open", "."}, []string{"pkill", "-x", "Finder"}, "Finder"}
		case "terminal":
			return appCommands{[]string{"open", "-a", "Terminal"}, []string{"pkill", "-x", "Terminal"}, "Terminal"}
		}
	default: // linux
		switch app {
		case "notepad":
			return appCommands{[]string{"gedit"}, []string{"pkill", "gedit"}, "Text Editor"}
		case "calculator":
			return appCommands{[]string{"gnome-calculator"}, []string{"pkill", "gnome-calculator"}, "Calculator"}
		case "browser":
			return appCommands{[]string{"xdg-open", "https://www.google.com"}, []string{"pkill", "chrome"}, "Browser"}
		case "explorer":
			return appCommands{[]string{"xdg-open", "."}, []string{"pkill", "nautilus"}, "File Manager"}
		case "terminal":
			return appCommands{[]string{"x-terminal-emulator"}, []string{"pkill", "x-terminal-emulator"}, "Terminal"}
		}
	}
	return appCommands{}
}

// resolveApp finds the first canonical app whose trigger words appear in the
// utterance, priority-ordered.
func resolveApp(command string) (string, bool) {
	cmdLower := strings.ToLower(command)
	for _, app := range appOrder {
		for _, word := range commandMap[app] {
			if strings.Contains(cmdLower, word) {
				return app, true
			}
		}
	}
	return "", false
}

// OpenApp launches the application named in the utterance. Failures become a
// status string, never an error.
func (a *Adapter) OpenApp(command string) string {
	app, ok := resolveApp(command)
	if !ok {
		return "I couldn't recognize the application to open."
	}
	pc := platformCommands(app)
	if len(pc.open) == 0 {
		return "I couldn't recognize the application to open."
	}
	log.Printf("ACTION: opening %s", pc.name)
	if err := commands.RunCommand(exec.Command(pc.open[0], pc.open[1:]...)); err != nil {
		return "I had trouble opening " + pc.name + "."
	}
	return "Opening " + pc.name + "."
}

// CloseApp terminates the application named in the utterance.
func (a *Adapter) CloseApp(command string) string {
	app, ok := resolveApp(command)
	if !ok {
		return "I couldn't recognize the application to close."
	}
	pc := platformCommands(app)
	if len(pc.close) == 0 {
		return "I couldn't recognize the application to close."
	}
	log.Printf("ACTION: closing %s", pc.name)
	if err := commands.RunCommand(exec.Command(pc.close[0], pc.close[1:]...)); err != nil {
		return "I had trouble closing " + pc.name + "."
	}
	return "Closed " + pc.name + "."
}
