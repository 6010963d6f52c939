package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-pos/internal/application/usecase"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

type fakeTransactionsAPI struct {
	txs []entity.Transaction
	err error
}

func (f *fakeTransactionsAPI) ListTransactions(context.Context) ([]entity.Transaction, error) {
	return f.txs, f.err
}

func TestReportsUseCase_ResumenDeVentas(t *testing.T) {
	hoy := time.Now()
	api := &fakeTransactionsAPI{txs: []entity.Transaction{
		{ID: 1, TotalAmount: decimal.NewFromFloat(287.50), PaymentMethod: "CASH", Timestamp: hoy},
		{ID: 2, TotalAmount: decimal.NewFromFloat(112.50), PaymentMethod: "CASH", Timestamp: hoy},
	}}
	uc := usecase.NewReportsUseCase(api, logger.NewNop())

	report, err := uc.SalesReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, "400.00", report.TotalRevenue.StringFixed(2))
	assert.Len(t, report.Transactions, 2)
}

func TestReportsUseCase_HistorialVacio(t *testing.T) {
	uc := usecase.NewReportsUseCase(&fakeTransactionsAPI{}, logger.NewNop())

	report, err := uc.SalesReport(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Count)
	assert.True(t, report.TotalRevenue.IsZero())
}

func TestReportsUseCase_ErrorDeRedSePropaga(t *testing.T) {
	fallo := errors.New("connection refused")
	uc := usecase.NewReportsUseCase(&fakeTransactionsAPI{err: fallo}, logger.NewNop())

	_, err := uc.SalesReport(context.Background())

	assert.ErrorIs(t, err, fallo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts struct{ products []entity.Product }

func (f fakeProducts) Products() []entity.Product { return f.products }

func TestDashboardUseCase_Indicadores(t *testing.T) {
	uc := usecase.NewDashboardUseCase(fakeProducts{products: []entity.Product{
		{SKU: "A", CostPrice: decimal.NewFromInt(5), StockQuantity: 100},
		{SKU: "B", CostPrice: decimal.NewFromFloat(2.5), StockQuantity: 4},
		{SKU: "C", CostPrice: decimal.NewFromInt(10), StockQuantity: 9},
	}})

	stats := uc.Stats()

	assert.Equal(t, 3, stats.ProductCount)
	require.Len(t, stats.LowStock, 2, "stock bajo es estrictamente menor a 10")
	assert.Equal(t, "B", stats.LowStock[0].SKU)
	assert.Equal(t, "C", stats.LowStock[1].SKU)
	// 5×100 + 2.5×4 + 10×9 = 600
	assert.Equal(t, "600.00", stats.InventoryCost.StringFixed(2))
}

func TestDashboardUseCase_CatalogoVacio(t *testing.T) {
	stats := usecase.NewDashboardUseCase(fakeProducts{}).Stats()

	assert.Equal(t, 0, stats.ProductCount)
	assert.Empty(t, stats.LowStock)
	assert.True(t, stats.InventoryCost.IsZero())
}
