package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction venta registrada en el backend (solo lectura para reportes).
type Transaction struct {
	ID            int
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Timestamp     time.Time
}

// Prediction pronóstico de demanda semanal generado por el motor de AI del backend.
type Prediction struct {
	SKU                   string
	PredictedWeeklyDemand int
	Trend                 string // "Growing" | "Declining"
	Recommendation        string
}

// ChatMessage mensaje del transcript del asistente.
type ChatMessage struct {
	Sender string // "user" | "nexus"
	Text   string
}
