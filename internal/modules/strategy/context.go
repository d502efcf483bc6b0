package strategy

import (
	"io"

	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/modules/metrics"
	"github.com/reusedev/pattern-hub/tools"
)

// PaymentContext runs whichever payment strategy is currently selected.
type PaymentContext struct {
	strategy PaymentStrategy
	out      io.Writer
}

func NewPaymentContext(out io.Writer) *PaymentContext {
	return &PaymentContext{out: out}
}

func (c *PaymentContext) SetStrategy(s PaymentStrategy) {
	c.strategy = s
}

func (c *PaymentContext) ProcessPayment(amount float64) bool {
	if c.strategy == nil {
		tools.Println(c.out, "❌ No payment method selected!")
		metrics.Payments.WithLabelValues("none", metrics.Result(false)).Inc()
		return false
	}
	tools.Printf(c.out, "💳 Using %s payment method\n", c.strategy.Name())
	ok := c.strategy.Pay(c.out, amount)
	metrics.Payments.WithLabelValues(c.strategy.Name(), metrics.Result(ok)).Inc()
	logs.Logger.Debug().Str("method", c.strategy.Name()).Float64("amount", amount).Bool("ok", ok).Msg("payment processed")
	return ok
}
