package furniture

import (
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

type Style string

const (
	Modern    Style = "modern"
	Victorian Style = "victorian"
)

func (s Style) String() string {
	return string(s)
}

// Factory creates one family of matching furniture.
type Factory interface {
	CreateChair(material, color string) Chair
	CreateTable(material, color, size string) Table
	CreateSofa(material, color string, seats uint32) Sofa
	Name() string
}

type ModernFactory struct {
	out io.Writer
}

func NewModernFactory(out io.Writer) *ModernFactory {
	return &ModernFactory{out: out}
}

func (f *ModernFactory) CreateChair(material, color string) Chair {
	tools.Printf(f.out, "🏭 Modern factory creating chair: %s %s\n", material, color)
	return &ModernChair{Material: material, Color: color, out: f.out}
}

func (f *ModernFactory) CreateTable(material, color, size string) Table {
	tools.Printf(f.out, "🏭 Modern factory creating table: %s %s %s\n", material, color, size)
	return &ModernTable{Material: material, Color: color, Size: size, out: f.out}
}

func (f *ModernFactory) CreateSofa(material, color string, seats uint32) Sofa {
	tools.Printf(f.out, "🏭 Modern factory creating sofa: %s %s with %d seats\n", material, color, seats)
	return &ModernSofa{Material: material, Color: color, Seats: seats, out: f.out}
}

func (f *ModernFactory) Name() string {
	return "Modern Furniture Factory"
}

// VictorianFactory always produces carved pieces.
type VictorianFactory struct {
	out io.Writer
}

func NewVictorianFactory(out io.Writer) *VictorianFactory {
	return &VictorianFactory{out: out}
}

func (f *VictorianFactory) CreateChair(material, color string) Chair {
	tools.Printf(f.out, "🏭 Victorian factory creating chair: %s %s\n", material, color)
	return &VictorianChair{Material: material, Color: color, Carvings: true, out: f.out}
}

func (f *VictorianFactory) CreateTable(material, color, size string) Table {
	tools.Printf(f.out, "🏭 Victorian factory creating table: %s %s %s\n", material, color, size)
	return &VictorianTable{Material: material, Color: color, Size: size, Carvings: true, out: f.out}
}

func (f *VictorianFactory) CreateSofa(material, color string, seats uint32) Sofa {
	tools.Printf(f.out, "🏭 Victorian factory creating sofa: %s %s with %d seats\n", material, color, seats)
	return &VictorianSofa{Material: material, Color: color, Seats: seats, Carvings: true, out: f.out}
}

func (f *VictorianFactory) Name() string {
	return "Victorian Furniture Factory"
}
