package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo remoto.
// El cliente mantiene una copia de solo lectura (snapshot); toda mutación de
// inventario ocurre en el backend y se refleja con un re-fetch explícito.
type Product struct {
	ID            int
	SKU           string // código único dentro del snapshot
	Name          string
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	StockQuantity int
	Category      string
	Images        []string // secuencia ordenada, opcional
}

// LowStockThreshold umbral bajo el cual un producto se considera en riesgo.
const LowStockThreshold = 10

// IsLowStock indica si el producto está por debajo del stock de seguridad.
func (p Product) IsLowStock() bool {
	return p.StockQuantity < LowStockThreshold
}
