package strategy

import (
	"fmt"
	"io"

	"github.com/reusedev/pattern-hub/tools"
)

type Scenario struct {
	Amount     float64
	CardNumber string
	CardHolder string
	CVV        string
	Email      string
}

func Demo(w io.Writer, s Scenario) error {
	tools.Println(w, "💳 Strategy Pattern Example - Payment System")
	tools.Rule(w, "=", 40)

	ctx := NewPaymentContext(w)
	tools.Printf(w, "💰 Processing payment of $%.2f\n\n", s.Amount)

	tools.Println(w, "🔄 Without a payment method:")
	ctx.ProcessPayment(s.Amount)
	tools.Println(w)

	tools.Println(w, "🔄 Using Credit Card:")
	ctx.SetStrategy(NewCreditCardPayment(s.CardNumber, s.CardHolder, s.CVV))
	if !ctx.ProcessPayment(s.Amount) {
		return fmt.Errorf("credit card payment failed")
	}
	tools.Println(w)

	tools.Println(w, "🔄 Using PayPal:")
	ctx.SetStrategy(NewPayPalPayment(s.Email))
	if !ctx.ProcessPayment(s.Amount) {
		return fmt.Errorf("paypal payment failed")
	}
	tools.Println(w)

	tools.Println(w, "✅ Strategy Pattern example completed!")
	tools.Println(w)
	tools.Println(w, "💡 Key Points:")
	tools.Println(w, "  - PaymentStrategy defines the algorithm interface")
	tools.Println(w, "  - CreditCard and PayPal are concrete strategies")
	tools.Println(w, "  - PaymentContext uses payment strategies")
	tools.Println(w, "  - Payment algorithms can be swapped at runtime")
	return nil
}
