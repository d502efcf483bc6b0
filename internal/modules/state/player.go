package state

import (
	"io"

	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/modules/metrics"
	"github.com/reusedev/pattern-hub/tools"
)

// MusicPlayer delegates every operation to its current state.
type MusicPlayer struct {
	current PlayerState
	song    string
	out     io.Writer
}

func NewMusicPlayer(out io.Writer, song string) *MusicPlayer {
	return &MusicPlayer{current: Stopped{}, song: song, out: out}
}

func (p *MusicPlayer) Play() error {
	return p.transition("play", p.current.Play)
}

func (p *MusicPlayer) Pause() error {
	return p.transition("pause", p.current.Pause)
}

func (p *MusicPlayer) Stop() error {
	return p.transition("stop", p.current.Stop)
}

func (p *MusicPlayer) CurrentState() Name {
	return p.current.Name()
}

func (p *MusicPlayer) Song() string {
	return p.song
}

// transition keeps the current state when op fails.
func (p *MusicPlayer) transition(operation string, op func(io.Writer) (PlayerState, error)) error {
	tools.Printf(p.out, "🎵 Song: %s | Current state: %s\n", p.song, p.current.Name())
	from := p.current.Name()
	next, err := op(p.out)
	metrics.Transitions.WithLabelValues(operation, metrics.Result(err == nil)).Inc()
	if err != nil {
		tools.Printf(p.out, "   ❌ Error: %s\n\n", err)
		logs.Logger.Debug().Str("operation", operation).Str("state", from.String()).Err(err).Msg("transition rejected")
		return err
	}
	p.current = next
	tools.Printf(p.out, "   ➡️  New state: %s\n\n", p.current.Name())
	logs.Logger.Debug().Str("operation", operation).Str("from", from.String()).Str("to", next.Name().String()).Msg("transition")
	return nil
}
