package observer

// Observer is notified with every piece of news the subject publishes.
type Observer interface {
	ID() string
	Update(news string)
}

type Subject interface {
	Attach(o Observer)
	Detach(id string) bool
	Notify()
}
