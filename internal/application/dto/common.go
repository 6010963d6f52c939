package dto

// ErrorResponse cuerpo de error del backend: {"detail": "..."}.
// El mensaje se muestra al usuario tal cual (rechazos de negocio, spec FastAPI).
type ErrorResponse struct {
	Detail string `json:"detail"`
}
