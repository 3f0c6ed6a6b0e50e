package cart

import "github.com/shopspring/decimal"

// DefaultTaxRate is the storefront's flat sales tax.
var DefaultTaxRate = decimal.RequireFromString("0.10")

// Summary is the order summary shown next to the cart.
type Summary struct {
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Summary prices the cart. Shipping is always free; tax is charged on the
// subtotal and rounded to cents.
func (c *Cart) Summary(taxRate decimal.Decimal) Summary {
	lines := c.Lines()

	items := 0
	subtotal := decimal.Zero
	for _, line := range lines {
		items += line.Quantity
		subtotal = subtotal.Add(line.Subtotal())
	}

	tax := subtotal.Mul(taxRate).Round(2)
	return Summary{
		Items:    items,
		Subtotal: subtotal,
		Shipping: decimal.Zero,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
