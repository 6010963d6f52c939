package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// TransactionsAPI puerto de lectura del historial de ventas.
type TransactionsAPI interface {
	ListTransactions(ctx context.Context) ([]entity.Transaction, error)
}

// SalesReport resumen del historial de ventas para la vista de reportes.
type SalesReport struct {
	Transactions []entity.Transaction
	Count        int
	TotalRevenue decimal.Decimal
}

// ReportsUseCase reportes de ventas a partir del historial del backend.
type ReportsUseCase struct {
	api TransactionsAPI
	log *logger.Logger
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(api TransactionsAPI, log *logger.Logger) *ReportsUseCase {
	return &ReportsUseCase{api: api, log: log}
}

// SalesReport descarga el historial y lo agrega en un resumen.
func (uc *ReportsUseCase) SalesReport(ctx context.Context) (SalesReport, error) {
	txs, err := uc.api.ListTransactions(ctx)
	if err != nil {
		return SalesReport{}, err
	}

	report := SalesReport{Transactions: txs, Count: len(txs), TotalRevenue: decimal.Zero}
	for _, tx := range txs {
		report.TotalRevenue = report.TotalRevenue.Add(tx.TotalAmount)
	}
	return report, nil
}
