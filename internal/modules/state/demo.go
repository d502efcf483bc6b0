package state

import (
	"fmt"
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

func Demo(w io.Writer, song string) error {
	tools.Println(w, "🎵 State Pattern Example - Music Player")
	tools.Rule(w, "=", 40)

	player := NewMusicPlayer(w, song)
	tools.Printf(w, "📱 Initial state: %s\n\n", player.CurrentState())

	tools.Println(w, "🔄 Normal playback flow:")
	tools.Rule(w, "-", 20)
	// Stopped -> Playing -> Paused -> Playing -> Stopped
	if err := must(player.Play, player.Pause, player.Play, player.Stop); err != nil {
		return err
	}

	tools.Println(w, "🔄 Test invalid operations:")
	tools.Rule(w, "-", 20)
	if err := player.Stop(); err != nil {
		tools.Printf(w, "🚫 Caught error: %s\n", err)
	}
	if err := player.Pause(); err != nil {
		tools.Printf(w, "🚫 Caught error: %s\n", err)
	}

	tools.Println(w, "🔄 Play again:")
	tools.Rule(w, "-", 20)
	if err := must(player.Play); err != nil {
		return err
	}
	if err := player.Play(); err != nil {
		tools.Printf(w, "🚫 Play failed: %s\n", err)
	} else {
		tools.Println(w, "✅ Play successful")
	}
	if err := must(player.Pause); err != nil {
		return err
	}
	if err := player.Pause(); err != nil {
		tools.Printf(w, "🚫 Duplicate pause failed: %s\n", err)
	}

	tools.Println(w, "✅ State Pattern example completed!")
	tools.Println(w)
	tools.Println(w, "💡 Design Pattern Key Points:")
	tools.Println(w, "  - PlayerState interface defines the state contract")
	tools.Println(w, "  - Stopped, Playing, Paused are concrete states")
	tools.Println(w, "  - MusicPlayer is the context that manages current state")
	tools.Println(w, "  - Same operations have different behaviors in different states")
	tools.Println(w, "  - Invalid state transitions return errors instead of silent handling")
	tools.Println(w, "  - State transition logic is encapsulated in each state type")
	return nil
}

// must runs steps that the scripted flow expects to succeed.
func must(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("unexpected transition failure: %w", err)
		}
	}
	return nil
}
