package vehicle

import (
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

type Kind string

const (
	KindCar        Kind = "car"
	KindMotorcycle Kind = "motorcycle"
	KindTruck      Kind = "truck"
)

func (k Kind) String() string {
	return string(k)
}

const defaultTruckCapacity = 10.0

// Factory decides which concrete Vehicle a manufacturing request produces.
type Factory interface {
	CreateVehicle(brand, model string, year uint32) Vehicle
	Name() string
}

type CarFactory struct {
	out io.Writer
}

func (f *CarFactory) CreateVehicle(brand, model string, year uint32) Vehicle {
	tools.Printf(f.out, "🏭 Car factory manufacturing: %s %s\n", brand, model)
	return &Car{Brand: brand, Model: model, Year: year, out: f.out}
}

func (f *CarFactory) Name() string {
	return "Car Factory"
}

type MotorcycleFactory struct {
	out io.Writer
}

func (f *MotorcycleFactory) CreateVehicle(brand, model string, year uint32) Vehicle {
	tools.Printf(f.out, "🏭 Motorcycle factory manufacturing: %s %s\n", brand, model)
	return &Motorcycle{Brand: brand, Model: model, Year: year, out: f.out}
}

func (f *MotorcycleFactory) Name() string {
	return "Motorcycle Factory"
}

// TruckFactory fills in the capacity the common factory signature lacks.
type TruckFactory struct {
	out io.Writer
}

func (f *TruckFactory) CreateVehicle(brand, model string, year uint32) Vehicle {
	tools.Printf(f.out, "🏭 Truck factory manufacturing: %s %s\n", brand, model)
	return &Truck{Brand: brand, Model: model, Year: year, Capacity: defaultTruckCapacity, out: f.out}
}

func (f *TruckFactory) Name() string {
	return "Truck Factory"
}
