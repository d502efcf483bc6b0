package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommand struct {
	mock.Mock
}

func (m *mockCommand) Execute() { m.Called() }

func (m *mockCommand) Undo() { m.Called() }

func (m *mockCommand) Name() string {
	return m.Called().String(0)
}

func TestLightInitialState(t *testing.T) {
	l := NewLight(&bytes.Buffer{})
	assert.False(t, l.IsOn)
	assert.Zero(t, l.Brightness)
}

func TestUndoRestoresReceiverState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(l *Light)
		cmd   func(l *Light) Command
	}{
		{
			name:  "turn on from off",
			setup: func(l *Light) {},
			cmd:   func(l *Light) Command { return NewTurnOnCommand(l) },
		},
		{
			name:  "turn off from on",
			setup: func(l *Light) { l.TurnOn() },
			cmd:   func(l *Light) Command { return NewTurnOffCommand(l) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLight(&bytes.Buffer{})
			tt.setup(l)
			before := *l

			c := tt.cmd(l)
			c.Execute()
			assert.NotEqual(t, before.IsOn, l.IsOn)

			c.Undo()
			assert.Equal(t, before.IsOn, l.IsOn)
			assert.Equal(t, before.Brightness, l.Brightness)
		})
	}
}

func TestCommandIdempotence(t *testing.T) {
	var buf bytes.Buffer
	l := NewLight(&buf)
	c := NewTurnOnCommand(l)

	c.Undo() // not executed yet
	assert.Empty(t, buf.String())

	c.Execute()
	c.Execute()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Light is ON")))
	assert.Equal(t, uint8(100), l.Brightness)
}

func TestRemoteControlPressUndo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLight(&buf)
	r := NewRemoteControl(&buf)

	r.PressButton(NewTurnOnCommand(l))
	r.PressButton(NewTurnOffCommand(l))
	require.False(t, l.IsOn)

	require.NoError(t, r.PressUndo())
	require.True(t, l.IsOn)

	require.ErrorIs(t, r.PressUndo(), ErrNothingToUndo)
	require.True(t, l.IsOn, "failed undo leaves the receiver alone")
	assert.Contains(t, buf.String(), "❌ No command to undo")
}

func TestRemoteControlWithMock(t *testing.T) {
	m := new(mockCommand)
	m.On("Name").Return("Mock")
	m.On("Execute").Once()
	m.On("Undo").Once()

	var buf bytes.Buffer
	r := NewRemoteControl(&buf)
	r.PressButton(m)
	require.NoError(t, r.PressUndo())

	m.AssertExpectations(t)
	assert.Contains(t, buf.String(), "🔘 Pressing button: Mock")
}

func TestDrain(t *testing.T) {
	var buf bytes.Buffer
	l := NewLight(&buf)
	r := NewRemoteControl(&buf)

	q := NewQueue(2)
	require.NoError(t, q.Enqueue(NewTurnOnCommand(l), NewTurnOffCommand(l)))
	q.Close()
	require.NoError(t, r.Drain(context.Background(), q))
	assert.False(t, l.IsOn)

	// the last drained command is undoable
	require.NoError(t, r.PressUndo())
	assert.True(t, l.IsOn)
}

func TestQueueEnqueueTwice(t *testing.T) {
	l := NewLight(&bytes.Buffer{})
	q := NewQueue(4)
	require.NoError(t, q.Enqueue(NewTurnOnCommand(l)))
	require.NotPanics(t, func() {
		require.NoError(t, q.Enqueue(NewTurnOffCommand(l)))
	})
	q.Close()

	require.NoError(t, NewRemoteControl(&bytes.Buffer{}).Drain(context.Background(), q))
	assert.False(t, l.IsOn)
}

func TestQueueFull(t *testing.T) {
	l := NewLight(&bytes.Buffer{})
	q := NewQueue(2)
	require.NoError(t, q.Enqueue(NewTurnOnCommand(l)))

	// returns instead of blocking, and keeps nothing from the rejected batch
	require.ErrorIs(t, q.Enqueue(NewTurnOffCommand(l), NewTurnOnCommand(l)), ErrQueueFull)
	require.NoError(t, q.Enqueue(NewTurnOffCommand(l)))
	require.ErrorIs(t, q.Enqueue(NewTurnOnCommand(l)), ErrQueueFull)
}

func TestQueueClosed(t *testing.T) {
	q := NewQueue(1)
	q.Close()
	require.NotPanics(t, q.Close)
	require.ErrorIs(t, q.Enqueue(NewTurnOnCommand(NewLight(&bytes.Buffer{}))), ErrQueueClosed)
}

func TestDrainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := NewQueue(0) // never closed, never fed
	err := NewRemoteControl(&bytes.Buffer{}).Drain(ctx, q)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "Command Pattern Example")
	assert.Contains(t, out, "↩️ Pressing UNDO button")
	assert.Contains(t, out, "❌ No command to undo")
	assert.Contains(t, out, "Command Pattern example completed!")
}
