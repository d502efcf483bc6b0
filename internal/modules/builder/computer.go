package builder

import "fmt"

type Computer struct {
	CPU     string
	RAM     uint32 // GB
	Storage uint32 // GB
}

func (c Computer) String() string {
	return fmt.Sprintf("CPU=%s, RAM=%dGB, Storage=%dGB", c.CPU, c.RAM, c.Storage)
}

type ComputerBuilder interface {
	SetCPU(cpu string)
	SetRAM(ram uint32)
	SetStorage(storage uint32)
	Build() Computer
}

// StandardBuilder keeps its parts after Build, so it can be tweaked and
// built again.
type StandardBuilder struct {
	cpu     string
	ram     uint32
	storage uint32
}

func NewStandardBuilder() *StandardBuilder {
	return &StandardBuilder{}
}

func (b *StandardBuilder) SetCPU(cpu string) {
	b.cpu = cpu
}

func (b *StandardBuilder) SetRAM(ram uint32) {
	b.ram = ram
}

func (b *StandardBuilder) SetStorage(storage uint32) {
	b.storage = storage
}

func (b *StandardBuilder) Build() Computer {
	return Computer{CPU: b.cpu, RAM: b.ram, Storage: b.storage}
}

// Director knows the build recipes.
type Director struct{}

func (Director) ConstructGamingPC(b ComputerBuilder) Computer {
	b.SetCPU("Intel i9")
	b.SetRAM(32)
	b.SetStorage(2000)
	return b.Build()
}

func (Director) ConstructOfficePC(b ComputerBuilder) Computer {
	b.SetCPU("Intel i5")
	b.SetRAM(16)
	b.SetStorage(512)
	return b.Build()
}
