package command

type Command interface {
	Execute()
	Undo()
	Name() string
}

// TurnOnCommand switches the light on. Execute and Undo are idempotent:
// each only acts when the command is in the opposite executed state.
type TurnOnCommand struct {
	light    *Light
	executed bool
}

func NewTurnOnCommand(light *Light) *TurnOnCommand {
	return &TurnOnCommand{light: light}
}

func (c *TurnOnCommand) Execute() {
	if !c.executed {
		c.light.TurnOn()
		c.executed = true
	}
}

func (c *TurnOnCommand) Undo() {
	if c.executed {
		c.light.TurnOff()
		c.executed = false
	}
}

func (c *TurnOnCommand) Name() string {
	return "Turn On Light"
}

type TurnOffCommand struct {
	light    *Light
	executed bool
}

func NewTurnOffCommand(light *Light) *TurnOffCommand {
	return &TurnOffCommand{light: light}
}

func (c *TurnOffCommand) Execute() {
	if !c.executed {
		c.light.TurnOff()
		c.executed = true
	}
}

func (c *TurnOffCommand) Undo() {
	if c.executed {
		c.light.TurnOn()
		c.executed = false
	}
}

func (c *TurnOffCommand) Name() string {
	return "Turn Off Light"
}
