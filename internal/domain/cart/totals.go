package cart

import "github.com/shopspring/decimal"

// TaxRate IVA fijo del 15% aplicado sobre el subtotal.
var TaxRate = decimal.NewFromFloat(0.15)

// Totals desglose monetario de un carrito, exacto a 2 decimales.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals calcula subtotal, impuesto y total de un carrito.
// Subtotal = Σ precio_venta × cantidad; Tax = Subtotal × 15%; Total = Subtotal + Tax.
// Función pura, sin efectos; los montos se redondean a centavos.
func ComputeTotals(c *Cart) Totals {
	subtotal := decimal.Zero
	for _, it := range c.Items() {
		line := it.Product.SellingPrice.Mul(decimal.NewFromInt(int64(it.Qty)))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(TaxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
