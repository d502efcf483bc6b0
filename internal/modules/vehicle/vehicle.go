package vehicle

import (
	"fmt"
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

type Vehicle interface {
	StartEngine()
	StopEngine()
	Info() string
}

type Car struct {
	Brand string
	Model string
	Year  uint32
	out   io.Writer
}

func (c *Car) StartEngine() {
	tools.Printf(c.out, "🚗 %s %s engine started\n", c.Brand, c.Model)
}

func (c *Car) StopEngine() {
	tools.Printf(c.out, "🚗 %s %s engine stopped\n", c.Brand, c.Model)
}

func (c *Car) Info() string {
	return fmt.Sprintf("Car: %s %s (%d)", c.Brand, c.Model, c.Year)
}

type Motorcycle struct {
	Brand string
	Model string
	Year  uint32
	out   io.Writer
}

func (m *Motorcycle) StartEngine() {
	tools.Printf(m.out, "🏍️ %s %s engine started\n", m.Brand, m.Model)
}

func (m *Motorcycle) StopEngine() {
	tools.Printf(m.out, "🏍️ %s %s engine stopped\n", m.Brand, m.Model)
}

func (m *Motorcycle) Info() string {
	return fmt.Sprintf("Motorcycle: %s %s (%d)", m.Brand, m.Model, m.Year)
}

type Truck struct {
	Brand    string
	Model    string
	Year     uint32
	Capacity float32 // tons
	out      io.Writer
}

func (t *Truck) StartEngine() {
	tools.Printf(t.out, "🚛 %s %s engine started\n", t.Brand, t.Model)
}

func (t *Truck) StopEngine() {
	tools.Printf(t.out, "🚛 %s %s engine stopped\n", t.Brand, t.Model)
}

func (t *Truck) Info() string {
	return fmt.Sprintf("Truck: %s %s (%d) - Capacity: %g tons", t.Brand, t.Model, t.Year, t.Capacity)
}
