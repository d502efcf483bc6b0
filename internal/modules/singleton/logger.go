package singleton

import (
	"io"
	"sync"

	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/tools"
	"github.com/rs/zerolog"
)

const Prefix = "[Singleton]"

// Logger is the process-wide instance returned by Instance.
type Logger struct {
	Prefix string
	log    zerolog.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// Instance creates the logger on first use and returns the same pointer on
// every later call.
func Instance() *Logger {
	once.Do(func() {
		instance = &Logger{
			Prefix: Prefix,
			log:    logs.Logger.With().Str("component", "singleton").Logger(),
		}
		instance.log.Debug().Msg("singleton logger created")
	})
	return instance
}

func (l *Logger) Log(w io.Writer, msg string) {
	tools.Printf(w, "%s %s\n", l.Prefix, msg)
	l.log.Debug().Str("text", msg).Msg("logged")
}
