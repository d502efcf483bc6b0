package command

import (
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

// Light is the receiver mutated by the light commands.
type Light struct {
	IsOn       bool
	Brightness uint8

	out io.Writer
}

func NewLight(out io.Writer) *Light {
	return &Light{out: out}
}

func (l *Light) TurnOn() {
	l.IsOn = true
	l.Brightness = 100
	tools.Printf(l.out, "💡 Light is ON (brightness: %d)\n", l.Brightness)
}

func (l *Light) TurnOff() {
	l.IsOn = false
	l.Brightness = 0
	tools.Println(l.out, "🌑 Light is OFF")
}

func (l *Light) Status() {
	if l.IsOn {
		tools.Printf(l.out, "💡 Light Status: ON (brightness: %d)\n", l.Brightness)
		return
	}
	tools.Println(l.out, "🌑 Light Status: OFF")
}
