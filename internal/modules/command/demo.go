package command

import (
	"context"
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

func Demo(ctx context.Context, w io.Writer) error {
	tools.Println(w, "🔘 Command Pattern Example - Smart Light Remote")
	tools.Rule(w, "=", 45)

	light := NewLight(w)
	remote := NewRemoteControl(w)

	tools.Println(w, "📱 Initial state:")
	light.Status()
	tools.Println(w)

	tools.Println(w, "🔄 Testing normal operations:")
	tools.Rule(w, "-", 25)

	remote.PressButton(NewTurnOnCommand(light))
	light.Status()
	tools.Println(w)

	remote.PressButton(NewTurnOffCommand(light))
	light.Status()
	tools.Println(w)

	tools.Println(w, "🔄 Testing undo functionality:")
	tools.Rule(w, "-", 25)

	// turns the light back on
	if err := remote.PressUndo(); err != nil {
		return err
	}
	light.Status()
	tools.Println(w)

	// slot is empty now
	_ = remote.PressUndo()
	light.Status()
	tools.Println(w)

	tools.Println(w, "🔄 Running a queued scene:")
	tools.Rule(w, "-", 25)
	q := NewQueue(3)
	if err := q.Enqueue(NewTurnOffCommand(light), NewTurnOnCommand(light), NewTurnOffCommand(light)); err != nil {
		return err
	}
	q.Close()
	if err := remote.Drain(ctx, q); err != nil {
		return err
	}
	light.Status()
	tools.Println(w)

	tools.Println(w, "✅ Command Pattern example completed!")
	tools.Println(w)
	tools.Println(w, "💡 Key Points:")
	tools.Println(w, "  • Command interface defines Execute() and Undo()")
	tools.Println(w, "  • TurnOnCommand/TurnOffCommand are concrete commands")
	tools.Println(w, "  • Light is the receiver that performs actual operations")
	tools.Println(w, "  • RemoteControl is the invoker that manages commands")
	tools.Println(w, "  • A Queue lets the invoker replay a batch of commands in order")
	return nil
}
