package dto

import "github.com/jhoicas/nexus-pos/internal/domain/entity"

// PredictionDTO respuesta de GET /ai/predict/{sku}.
type PredictionDTO struct {
	SKU                   string `json:"sku"`
	Status                string `json:"status,omitempty"` // "insufficient_data" cuando falta historial
	CurrentStock          int    `json:"current_stock,omitempty"`
	PredictedWeeklyDemand int    `json:"predicted_weekly_demand"`
	Trend                 string `json:"trend"`
	Recommendation        string `json:"recommendation"`
}

// ToPrediction convierte la forma de cable a entidad de dominio.
func (d PredictionDTO) ToPrediction() entity.Prediction {
	return entity.Prediction{
		SKU:                   d.SKU,
		PredictedWeeklyDemand: d.PredictedWeeklyDemand,
		Trend:                 d.Trend,
		Recommendation:        d.Recommendation,
	}
}

// ChatRequest cuerpo de POST /ai/chat.
type ChatRequest struct {
	Text string `json:"text"`
}

// ChatResponse respuesta del asistente. Action es opcional y, cuando está
// presente, es un comando de navegación (NAVIGATE_POS, NAVIGATE_DASHBOARD, …).
type ChatResponse struct {
	Text   string `json:"text"`
	Action string `json:"action,omitempty"`
}
