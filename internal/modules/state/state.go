package state

import (
	"errors"
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

var ErrInvalidOperation = errors.New("invalid operation")

// StateError is returned for a transition the current state does not allow.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string {
	return "Invalid operation: " + e.Msg
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidOperation
}

func invalid(msg string) error {
	return &StateError{Msg: msg}
}

type Name string

const (
	NameStopped Name = "Stopped"
	NamePlaying Name = "Playing"
	NamePaused  Name = "Paused"
)

func (n Name) String() string {
	return string(n)
}

// PlayerState returns the next state for each operation, or an error when
// the operation is not allowed from this state.
type PlayerState interface {
	Play(w io.Writer) (PlayerState, error)
	Pause(w io.Writer) (PlayerState, error)
	Stop(w io.Writer) (PlayerState, error)
	Name() Name
}

type Stopped struct{}

func (Stopped) Play(w io.Writer) (PlayerState, error) {
	tools.Println(w, "▶️  Starting music playback")
	return Playing{}, nil
}

func (Stopped) Pause(io.Writer) (PlayerState, error) {
	return nil, invalid("Cannot pause when stopped")
}

func (Stopped) Stop(io.Writer) (PlayerState, error) {
	return nil, invalid("Already stopped")
}

func (Stopped) Name() Name { return NameStopped }

type Playing struct{}

func (Playing) Play(io.Writer) (PlayerState, error) {
	return nil, invalid("Already playing")
}

func (Playing) Pause(w io.Writer) (PlayerState, error) {
	tools.Println(w, "⏸️  Pausing playback")
	return Paused{}, nil
}

func (Playing) Stop(w io.Writer) (PlayerState, error) {
	tools.Println(w, "⏹️  Stopping playback")
	return Stopped{}, nil
}

func (Playing) Name() Name { return NamePlaying }

type Paused struct{}

func (Paused) Play(w io.Writer) (PlayerState, error) {
	tools.Println(w, "▶️  Resuming playback")
	return Playing{}, nil
}

func (Paused) Pause(io.Writer) (PlayerState, error) {
	return nil, invalid("Already paused")
}

func (Paused) Stop(w io.Writer) (PlayerState, error) {
	tools.Println(w, "⏹️  Stopping playback")
	return Stopped{}, nil
}

func (Paused) Name() Name { return NamePaused }
