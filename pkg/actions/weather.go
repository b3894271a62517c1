package actions

import (
	"fmt"
	"time"
)

// Weather reports conditions for a city. The backend is offline for now; a
// network-backed replacement must degrade to an apology string instead of
// returning an error.
func (a *Adapter) Weather(city string) string {
	if city == "" {
		return "Please say the city, e.g., 'weather Bangalore'."
	}
	return fmt.Sprintf("Weather in %s: 29°C, partly cloudy.", city)
}

// TimeNow returns the current date and time as a spoken-friendly sentence.
func (a *Adapter) TimeNow() string {
	now := time.Now()
	return fmt.Sprintf("It's %s.", now.Format("Monday, 02 January 2006, 15:04:05"))
}
