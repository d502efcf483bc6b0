package builder

import (
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

func Demo(w io.Writer) error {
	tools.Println(w, "🖥️ Builder Pattern Example - Computer Assembly")
	tools.Rule(w, "=", 40)

	var director Director
	b := NewStandardBuilder()

	gaming := director.ConstructGamingPC(b)
	tools.Printf(w, "Gaming PC: %s\n", gaming)

	office := director.ConstructOfficePC(b)
	tools.Printf(w, "Office PC: %s\n", office)

	// the builder keeps its parts, so a variation is one step away
	b.SetRAM(64)
	tools.Printf(w, "Office PC with extra RAM: %s\n", b.Build())

	custom := NewComputer(WithCPU("AMD Ryzen 7"), WithRAM(32), WithStorage(1000))
	tools.Printf(w, "Custom PC (functional options): %s\n", custom)
	tools.Println(w)

	tools.Println(w, "✅ Builder Pattern example completed!")
	tools.Println(w)
	tools.Println(w, "💡 Key Points:")
	tools.Println(w, "  - ComputerBuilder defines the construction steps")
	tools.Println(w, "  - Director encodes reusable build recipes")
	tools.Println(w, "  - Functional options are the idiomatic Go variant of a builder")
	return nil
}
