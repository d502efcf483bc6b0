package furniture

import (
	"fmt"
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

type Chair interface {
	SitOn()
	Info() string
}

type Table interface {
	PutOn()
	Info() string
}

type Sofa interface {
	LieOn()
	Info() string
}

type ModernChair struct {
	Material string
	Color    string
	out      io.Writer
}

func (c *ModernChair) SitOn() {
	tools.Printf(c.out, "🪑 Sitting on modern %s %s chair\n", c.Color, c.Material)
}

func (c *ModernChair) Info() string {
	return fmt.Sprintf("Modern Chair - Material: %s, Color: %s", c.Material, c.Color)
}

type ModernTable struct {
	Material string
	Color    string
	Size     string
	out      io.Writer
}

func (t *ModernTable) PutOn() {
	tools.Printf(t.out, "🪑 Putting items on modern %s %s %s table\n", t.Color, t.Material, t.Size)
}

func (t *ModernTable) Info() string {
	return fmt.Sprintf("Modern Table - Material: %s, Color: %s, Size: %s", t.Material, t.Color, t.Size)
}

type ModernSofa struct {
	Material string
	Color    string
	Seats    uint32
	out      io.Writer
}

func (s *ModernSofa) LieOn() {
	tools.Printf(s.out, "🛋️ Lying on modern %s %s sofa with %d seats\n", s.Color, s.Material, s.Seats)
}

func (s *ModernSofa) Info() string {
	return fmt.Sprintf("Modern Sofa - Material: %s, Color: %s, Seats: %d", s.Material, s.Color, s.Seats)
}

type VictorianChair struct {
	Material string
	Color    string
	Carvings bool
	out      io.Writer
}

func (c *VictorianChair) SitOn() {
	tools.Printf(c.out, "🪑 Sitting on victorian %s %s chair %s\n", c.Color, c.Material, carvingNarration(c.Carvings))
}

func (c *VictorianChair) Info() string {
	return fmt.Sprintf("Victorian Chair - Material: %s, Color: %s, %s", c.Material, c.Color, carvingInfo(c.Carvings))
}

type VictorianTable struct {
	Material string
	Color    string
	Size     string
	Carvings bool
	out      io.Writer
}

func (t *VictorianTable) PutOn() {
	tools.Printf(t.out, "🪑 Putting items on victorian %s %s %s table %s\n", t.Color, t.Material, t.Size, carvingNarration(t.Carvings))
}

func (t *VictorianTable) Info() string {
	return fmt.Sprintf("Victorian Table - Material: %s, Color: %s, Size: %s, %s", t.Material, t.Color, t.Size, carvingInfo(t.Carvings))
}

type VictorianSofa struct {
	Material string
	Color    string
	Seats    uint32
	Carvings bool
	out      io.Writer
}

func (s *VictorianSofa) LieOn() {
	tools.Printf(s.out, "🛋️ Lying on victorian %s %s sofa with %d seats %s\n", s.Color, s.Material, s.Seats, carvingNarration(s.Carvings))
}

func (s *VictorianSofa) Info() string {
	return fmt.Sprintf("Victorian Sofa - Material: %s, Color: %s, Seats: %d, %s", s.Material, s.Color, s.Seats, carvingInfo(s.Carvings))
}

func carvingNarration(carvings bool) string {
	if carvings {
		return "with beautiful carvings"
	}
	return "without carvings"
}

func carvingInfo(carvings bool) string {
	if carvings {
		return "with carvings"
	}
	return "without carvings"
}
