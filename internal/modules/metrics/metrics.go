package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "pattern_hub"

var (
	Registry = prometheus.NewRegistry()

	DemoRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "demo_runs_total",
		Help:      "Demo runs by pattern and result.",
	}, []string{"pattern", "result"})

	CommandActions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "command_actions_total",
		Help:      "Commands executed or undone by the remote control.",
	}, []string{"command", "action"})

	Notifications = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "observer_notifications_total",
		Help:      "Observer updates delivered by the news agency.",
	})

	Transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "state_transitions_total",
		Help:      "Music player transitions by requested operation and result.",
	}, []string{"operation", "result"})

	Payments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Payments processed by method and result.",
	}, []string{"method", "result"})
)

func init() {
	Registry.MustRegister(DemoRuns, CommandActions, Notifications, Transitions, Payments)
}

func Result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}

// Write encodes every gathered family in the Prometheus text format.
func Write(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
