package builder

type Option func(c *Computer)

func WithCPU(cpu string) Option {
	return func(c *Computer) {
		c.CPU = cpu
	}
}

func WithRAM(ram uint32) Option {
	return func(c *Computer) {
		c.RAM = ram
	}
}

func WithStorage(storage uint32) Option {
	return func(c *Computer) {
		c.Storage = storage
	}
}

// NewComputer applies opts in order; later options win.
func NewComputer(opts ...Option) Computer {
	c := Computer{}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
