package singleton

import (
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

func Demo(w io.Writer) error {
	logger1 := Instance()
	logger2 := Instance()
	logger1.Log(w, "Hello, world!")
	tools.Printf(w, "logger1 address: %p\n", logger1)
	tools.Printf(w, "logger2 address: %p\n", logger2)
	tools.Printf(w, "Is same instance: %t\n", logger1 == logger2)
	return nil
}
