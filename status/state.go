// Package status holds the values shown on the badge and the screen layout
// they are drawn with.
package status

import "fmt"

const (
	DefaultLocation    = "Somewhere on Earth"
	DefaultTemperature = "??"
	DefaultHumidity    = "??"
)

// State is the committed content of the screen.
type State struct {
	Location    string
	Temperature string
	Humidity    string
}

// Default returns the state shown before any command arrives.
func Default() State {
	return State{
		Location:    DefaultLocation,
		Temperature: DefaultTemperature,
		Humidity:    DefaultHumidity,
	}
}

// Summary is the footer line.
func (s State) Summary() string {
	return fmt.Sprintf("Office is %s C, %s%% RH", s.Temperature, s.Humidity)
}
