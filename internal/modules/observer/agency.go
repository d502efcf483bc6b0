package observer

import (
	"io"
	"sync"

	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/modules/metrics"
	"github.com/reusedev/pattern-hub/tools"
)

var _ Subject = (*NewsAgency)(nil)

// NewsAgency keeps observers keyed by ID and notifies them in attach order.
type NewsAgency struct {
	lock      sync.Mutex
	observers map[string]Observer
	order     []string

	latestNews string
	out        io.Writer
}

func NewNewsAgency(out io.Writer) *NewsAgency {
	return &NewsAgency{
		observers: make(map[string]Observer),
		out:       out,
	}
}

// Attach registers o. An observer with the same ID is replaced in place.
func (a *NewsAgency) Attach(o Observer) {
	a.lock.Lock()
	defer a.lock.Unlock()
	if _, ok := a.observers[o.ID()]; !ok {
		a.order = append(a.order, o.ID())
	}
	a.observers[o.ID()] = o
}

// Detach reports whether an observer with that ID was attached.
func (a *NewsAgency) Detach(id string) bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	if _, ok := a.observers[id]; !ok {
		return false
	}
	delete(a.observers, id)
	for i, v := range a.order {
		if v == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

// Notify delivers the latest news to a snapshot of the observers taken under
// the lock, so Update may attach or detach observers.
func (a *NewsAgency) Notify() {
	a.lock.Lock()
	news := a.latestNews
	observers := make([]Observer, 0, len(a.order))
	for _, id := range a.order {
		observers = append(observers, a.observers[id])
	}
	a.lock.Unlock()

	for _, o := range observers {
		o.Update(news)
		metrics.Notifications.Inc()
	}
	logs.Logger.Debug().Int("observers", len(observers)).Msg("news delivered")
}

func (a *NewsAgency) Publish(news string) {
	tools.Printf(a.out, "📰 News Agency publishing: %s\n", news)
	a.lock.Lock()
	a.latestNews = news
	a.lock.Unlock()
	a.Notify()
}

func (a *NewsAgency) LatestNews() string {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.latestNews
}

func (a *NewsAgency) Observers() []string {
	a.lock.Lock()
	defer a.lock.Unlock()
	return append([]string(nil), a.order...)
}
