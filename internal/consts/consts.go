package consts

type Pattern string

const (
	Command         Pattern = "command"
	Observer        Pattern = "observer"
	State           Pattern = "state"
	Strategy        Pattern = "strategy"
	AbstractFactory Pattern = "abstract_factory"
	FactoryMethod   Pattern = "factory_method"
	Builder         Pattern = "builder"
	Prototype       Pattern = "prototype"
	Singleton       Pattern = "singleton"

	// All selects every registered pattern.
	All Pattern = "all"
)

func (p Pattern) String() string {
	return string(p)
}

type Category string

const (
	Behavioral Category = "behavioral"
	Creational Category = "creational"
)

func (c Category) String() string {
	return string(c)
}

func (p Pattern) Category() Category {
	switch p {
	case Command, Observer, State, Strategy:
		return Behavioral
	default:
		return Creational
	}
}
