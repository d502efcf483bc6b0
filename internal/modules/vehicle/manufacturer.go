package vehicle

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/reusedev/pattern-hub/tools"
)

var ErrUnknownKind = errors.New("unknown vehicle type")

type Manufacturer struct {
	factories map[Kind]Factory
	out       io.Writer
}

func NewManufacturer(out io.Writer) *Manufacturer {
	return &Manufacturer{
		factories: map[Kind]Factory{
			KindCar:        &CarFactory{out: out},
			KindMotorcycle: &MotorcycleFactory{out: out},
			KindTruck:      &TruckFactory{out: out},
		},
		out: out,
	}
}

func (m *Manufacturer) Manufacture(kind Kind, brand, model string, year uint32) (Vehicle, error) {
	factory, ok := m.factories[kind]
	if !ok {
		tools.Printf(m.out, "❌ Unknown vehicle type: %s\n", kind)
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	tools.Printf(m.out, "🏭 Using %s to manufacture vehicle\n", factory.Name())
	return factory.CreateVehicle(brand, model, year), nil
}

func (m *Manufacturer) Kinds() []Kind {
	kinds := make([]Kind, 0, len(m.factories))
	for k := range m.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (m *Manufacturer) ListKinds() {
	tools.Println(m.out, "📋 Available vehicle types:")
	for _, k := range m.Kinds() {
		tools.Printf(m.out, "  - %s: %s\n", k, m.factories[k].Name())
	}
}
