package command

import (
	"context"
	"errors"
	"io"

	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/modules/metrics"
	"github.com/reusedev/pattern-hub/tools"
)

var ErrNothingToUndo = errors.New("no command to undo")

// RemoteControl is the invoker. It remembers only the last pressed command.
type RemoteControl struct {
	last Command
	out  io.Writer
}

func NewRemoteControl(out io.Writer) *RemoteControl {
	return &RemoteControl{out: out}
}

func (r *RemoteControl) PressButton(cmd Command) {
	tools.Printf(r.out, "🔘 Pressing button: %s\n", cmd.Name())
	cmd.Execute()
	r.last = cmd
	metrics.CommandActions.WithLabelValues(cmd.Name(), "execute").Inc()
	logs.Logger.Debug().Str("command", cmd.Name()).Msg("command executed")
}

// PressUndo undoes the last command and clears the slot, so a second
// PressUndo in a row reports ErrNothingToUndo.
func (r *RemoteControl) PressUndo() error {
	if r.last == nil {
		tools.Println(r.out, "❌ No command to undo")
		return ErrNothingToUndo
	}
	cmd := r.last
	r.last = nil
	tools.Println(r.out, "↩️ Pressing UNDO button")
	cmd.Undo()
	metrics.CommandActions.WithLabelValues(cmd.Name(), "undo").Inc()
	logs.Logger.Debug().Str("command", cmd.Name()).Msg("command undone")
	return nil
}

// Drain presses every command taken from q until q is closed or ctx is done.
func (r *RemoteControl) Drain(ctx context.Context, q *Queue) error {
	for {
		select {
		case cmd, ok := <-q.ch:
			if !ok {
				return nil
			}
			r.PressButton(cmd)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
