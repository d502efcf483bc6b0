package furniture

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/reusedev/pattern-hub/tools"
)

var ErrUnknownStyle = errors.New("unknown furniture style")

const (
	setTableSize = "Medium"
	setSofaSeats = 3
)

type Set struct {
	Chair Chair
	Table Table
	Sofa  Sofa
}

// Manufacturer picks the factory for a style and builds whole sets from it.
type Manufacturer struct {
	factories map[Style]Factory
	out       io.Writer
}

func NewManufacturer(out io.Writer) *Manufacturer {
	return &Manufacturer{
		factories: map[Style]Factory{
			Modern:    NewModernFactory(out),
			Victorian: NewVictorianFactory(out),
		},
		out: out,
	}
}

// Register adds or replaces the factory for style.
func (m *Manufacturer) Register(style Style, f Factory) {
	m.factories[style] = f
}

func (m *Manufacturer) CreateSet(style Style, material, color string) (Set, error) {
	factory, ok := m.factories[style]
	if !ok {
		tools.Printf(m.out, "❌ Unknown furniture style: %s\n", style)
		return Set{}, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}
	tools.Printf(m.out, "🏭 Using %s to create furniture set\n", factory.Name())
	return Set{
		Chair: factory.CreateChair(material, color),
		Table: factory.CreateTable(material, color, setTableSize),
		Sofa:  factory.CreateSofa(material, color, setSofaSeats),
	}, nil
}

func (m *Manufacturer) Styles() []Style {
	styles := make([]Style, 0, len(m.factories))
	for s := range m.factories {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool { return styles[i] < styles[j] })
	return styles
}

func (m *Manufacturer) ListStyles() {
	tools.Println(m.out, "📋 Available furniture styles:")
	for _, s := range m.Styles() {
		tools.Printf(m.out, "  - %s: %s\n", s, m.factories[s].Name())
	}
}
