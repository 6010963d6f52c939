package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

// ProductsSource snapshot local del catálogo (sin red).
type ProductsSource interface {
	Products() []entity.Product
}

// DashboardStats indicadores de la vista principal, calculados sobre el
// snapshot local del catálogo.
type DashboardStats struct {
	ProductCount  int
	LowStock      []entity.Product
	InventoryCost decimal.Decimal // Σ costo × stock
}

// DashboardUseCase indicadores del tablero.
type DashboardUseCase struct {
	catalog ProductsSource
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(catalog ProductsSource) *DashboardUseCase {
	return &DashboardUseCase{catalog: catalog}
}

// Stats recorre el snapshot y arma los indicadores.
func (uc *DashboardUseCase) Stats() DashboardStats {
	products := uc.catalog.Products()
	stats := DashboardStats{ProductCount: len(products), InventoryCost: decimal.Zero}
	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStock = append(stats.LowStock, p)
		}
		stats.InventoryCost = stats.InventoryCost.Add(
			p.CostPrice.Mul(decimal.NewFromInt(int64(p.StockQuantity))))
	}
	return stats
}
