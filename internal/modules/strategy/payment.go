package strategy

import (
	"io"
	"strings"

	"github.com/reusedev/pattern-hub/tools"
)

type PaymentStrategy interface {
	Pay(w io.Writer, amount float64) bool
	Name() string
}

type CreditCardPayment struct {
	CardNumber string
	CardHolder string
	CVV        string
}

func NewCreditCardPayment(cardNumber, cardHolder, cvv string) *CreditCardPayment {
	return &CreditCardPayment{CardNumber: cardNumber, CardHolder: cardHolder, CVV: cvv}
}

func (c *CreditCardPayment) Pay(w io.Writer, amount float64) bool {
	tools.Println(w, "💳 Processing credit card payment:")
	tools.Printf(w, "   Card: %s\n", MaskCardNumber(c.CardNumber))
	tools.Printf(w, "   Holder: %s\n", c.CardHolder)
	tools.Printf(w, "   Amount: $%.2f\n", amount)
	tools.Printf(w, "   CVV: %s\n", strings.Repeat("*", len(c.CVV)))
	tools.Println(w, "   ✅ Credit card payment successful!")
	return true
}

func (c *CreditCardPayment) Name() string {
	return "Credit Card"
}

// MaskCardNumber keeps the first and last four digits. Numbers too short to
// keep both are masked entirely.
func MaskCardNumber(number string) string {
	if len(number) < 8 {
		return strings.Repeat("*", len(number))
	}
	return number[:4] + "****" + number[len(number)-4:]
}

type PayPalPayment struct {
	Email string
}

func NewPayPalPayment(email string) *PayPalPayment {
	return &PayPalPayment{Email: email}
}

func (p *PayPalPayment) Pay(w io.Writer, amount float64) bool {
	tools.Println(w, "📧 Processing PayPal payment:")
	tools.Printf(w, "   Email: %s\n", p.Email)
	tools.Printf(w, "   Amount: $%.2f\n", amount)
	tools.Println(w, "   ✅ PayPal payment successful!")
	return true
}

func (p *PayPalPayment) Name() string {
	return "PayPal"
}
