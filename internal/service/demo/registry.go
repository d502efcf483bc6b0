package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/reusedev/pattern-hub/config"
	"github.com/reusedev/pattern-hub/internal/consts"
	"github.com/reusedev/pattern-hub/internal/modules/builder"
	"github.com/reusedev/pattern-hub/internal/modules/command"
	"github.com/reusedev/pattern-hub/internal/modules/furniture"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/modules/metrics"
	"github.com/reusedev/pattern-hub/internal/modules/observer"
	"github.com/reusedev/pattern-hub/internal/modules/prototype"
	"github.com/reusedev/pattern-hub/internal/modules/singleton"
	"github.com/reusedev/pattern-hub/internal/modules/state"
	"github.com/reusedev/pattern-hub/internal/modules/strategy"
	"github.com/reusedev/pattern-hub/internal/modules/vehicle"
	"github.com/reusedev/pattern-hub/tools"
)

var (
	ErrUnknownPattern   = errors.New("unknown pattern")
	ErrDuplicatePattern = errors.New("pattern listed more than once")
)

type Func func(ctx context.Context, w io.Writer) error

// Registry runs demos by pattern name. Order is the sequence used for
// consts.All.
type Registry struct {
	demos map[consts.Pattern]Func
	order []consts.Pattern
}

func NewRegistry() *Registry {
	return &Registry{demos: make(map[consts.Pattern]Func)}
}

// Register adds or replaces a demo. New names are appended to the run order.
func (r *Registry) Register(p consts.Pattern, f Func) {
	if _, ok := r.demos[p]; !ok {
		r.order = append(r.order, p)
	}
	r.demos[p] = f
}

func (r *Registry) Patterns() []consts.Pattern {
	return append([]consts.Pattern(nil), r.order...)
}

// Reorder sets the run order. Every name must be registered and appear once.
func (r *Registry) Reorder(names []string) error {
	order := make([]consts.Pattern, 0, len(names))
	seen := make(map[consts.Pattern]bool, len(names))
	for _, n := range names {
		p := consts.Pattern(n)
		if _, ok := r.demos[p]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPattern, n)
		}
		if seen[p] {
			return fmt.Errorf("%w: %s", ErrDuplicatePattern, n)
		}
		seen[p] = true
		order = append(order, p)
	}
	r.order = order
	return nil
}

// Run executes one demo, or every demo in order when name is consts.All.
func (r *Registry) Run(ctx context.Context, name string, w io.Writer) error {
	if consts.Pattern(name) == consts.All {
		for i, p := range r.order {
			if i > 0 {
				tools.Println(w)
				tools.Rule(w, "#", 60)
				tools.Println(w)
			}
			if err := r.run(ctx, p, w); err != nil {
				return err
			}
		}
		return nil
	}
	p := consts.Pattern(name)
	if _, ok := r.demos[p]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPattern, name)
	}
	return r.run(ctx, p, w)
}

func (r *Registry) run(ctx context.Context, p consts.Pattern, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runID := uuid.New().String()
	log := logs.Logger.With().Str("run_id", runID).Str("pattern", p.String()).Str("category", p.Category().String()).Logger()
	log.Info().Msg("demo started")
	start := time.Now()

	err := r.demos[p](ctx, w)
	metrics.DemoRuns.WithLabelValues(p.String(), metrics.Result(err == nil)).Inc()
	if err != nil {
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("demo failed")
		return fmt.Errorf("%s demo: %w", p, err)
	}
	log.Info().Dur("duration", time.Since(start)).Msg("demo finished")
	return nil
}

// FromConfig registers every pattern with its scenario data from c and
// applies c.Order.
func FromConfig(c *config.Config) (*Registry, error) {
	r := NewRegistry()
	r.Register(consts.Command, command.Demo)
	r.Register(consts.Observer, func(_ context.Context, w io.Writer) error {
		return observer.Demo(w, observer.Scenario{
			News:     c.Observer.News,
			Detach:   c.Observer.Detach,
			Breaking: c.Observer.Breaking,
		})
	})
	r.Register(consts.State, func(_ context.Context, w io.Writer) error {
		return state.Demo(w, c.State.Song)
	})
	r.Register(consts.Strategy, func(_ context.Context, w io.Writer) error {
		return strategy.Demo(w, strategy.Scenario{
			Amount:     c.Strategy.Amount,
			CardNumber: c.Strategy.CreditCard.Number,
			CardHolder: c.Strategy.CreditCard.Holder,
			CVV:        c.Strategy.CreditCard.CVV,
			Email:      c.Strategy.PayPal.Email,
		})
	})
	r.Register(consts.AbstractFactory, func(_ context.Context, w io.Writer) error {
		orders := make([]furniture.Order, 0, len(c.AbstractFactory.Orders))
		for _, o := range c.AbstractFactory.Orders {
			orders = append(orders, furniture.Order{Style: o.Style, Material: o.Material, Color: o.Color})
		}
		return furniture.Demo(w, orders)
	})
	r.Register(consts.FactoryMethod, func(_ context.Context, w io.Writer) error {
		orders := make([]vehicle.Order, 0, len(c.FactoryMethod.Orders))
		for _, o := range c.FactoryMethod.Orders {
			orders = append(orders, vehicle.Order{Kind: o.Kind, Brand: o.Brand, Model: o.Model, Year: o.Year})
		}
		return vehicle.Demo(w, orders)
	})
	r.Register(consts.Builder, ignoreContext(builder.Demo))
	r.Register(consts.Prototype, ignoreContext(prototype.Demo))
	r.Register(consts.Singleton, ignoreContext(singleton.Demo))

	if err := r.Reorder(c.Order); err != nil {
		return nil, fmt.Errorf("config order: %w", err)
	}
	return r, nil
}

func ignoreContext(f func(io.Writer) error) Func {
	return func(_ context.Context, w io.Writer) error {
		return f(w)
	}
}
