package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

// TransactionItemCreate línea de venta: solo SKU y cantidad.
// Los precios se omiten a propósito: el backend recalcula el monto autoritativo.
type TransactionItemCreate struct {
	ProductSKU string `json:"product_sku"`
	Quantity   int    `json:"quantity"`
}

// TransactionCreate cuerpo de POST /transactions/.
type TransactionCreate struct {
	PaymentMethod string                  `json:"payment_method"`
	Items         []TransactionItemCreate `json:"items"`
}

// TransactionCreateResult respuesta de un checkout exitoso.
type TransactionCreateResult struct {
	Status        string          `json:"status"`
	TransactionID int             `json:"transaction_id"`
	Total         decimal.Decimal `json:"total"`
}

// TransactionDTO forma de cable de GET /transactions/ (reportes).
type TransactionDTO struct {
	ID            int             `json:"id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ToTransaction convierte la forma de cable a entidad de dominio.
func (d TransactionDTO) ToTransaction() entity.Transaction {
	return entity.Transaction{
		ID:            d.ID,
		TotalAmount:   d.TotalAmount,
		PaymentMethod: d.PaymentMethod,
		Timestamp:     d.Timestamp,
	}
}
