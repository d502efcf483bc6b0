package vehicle

import (
	"errors"
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

type Order struct {
	Kind  string
	Brand string
	Model string
	Year  uint32
}

func Demo(w io.Writer, orders []Order) error {
	tools.Println(w, "🏭 Factory Method Pattern Example - Vehicle Manufacturing System")
	tools.Rule(w, "=", 50)

	m := NewManufacturer(w)
	m.ListKinds()
	tools.Println(w)

	vehicles := make([]Vehicle, 0, len(orders))
	for _, o := range orders {
		v, err := m.Manufacture(Kind(o.Kind), o.Brand, o.Model, o.Year)
		switch {
		case errors.Is(err, ErrUnknownKind):
		case err != nil:
			return err
		default:
			vehicles = append(vehicles, v)
		}
		tools.Println(w)
	}

	tools.Println(w, "🚗 Testing manufactured vehicles:")
	tools.Rule(w, "=", 30)
	for _, v := range vehicles {
		tools.Printf(w, "📋 %s\n", v.Info())
		v.StartEngine()
		v.StopEngine()
		tools.Println(w)
	}

	tools.Println(w, "✅ Factory Method Pattern example completed!")
	tools.Println(w)
	tools.Println(w, "💡 Design Pattern Key Points:")
	tools.Println(w, "  - Vehicle interface defines the product")
	tools.Println(w, "  - Car, Motorcycle, Truck are concrete products")
	tools.Println(w, "  - Factory interface declares the factory method")
	tools.Println(w, "  - CarFactory, MotorcycleFactory, TruckFactory are concrete factories")
	tools.Println(w, "  - Manufacturer is the client that uses factories to create products")
	return nil
}
