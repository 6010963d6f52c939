// Package nexus implementa el cliente HTTP del backend NexusRetail.
//
// Todo el estado de negocio (precios, inventario, autenticación, inferencia AI)
// vive del lado del servidor; este paquete solo habla el contrato REST:
//
//	GET  /products/            catálogo completo
//	POST /products/            alta de producto
//	PUT  /products/{sku}/stock ajuste de stock
//	POST /transactions/        checkout atómico
//	GET  /transactions/        historial de ventas
//	GET  /ai/predict/{sku}     pronóstico de demanda
//	POST /ai/chat              asistente conversacional
//	POST /auth/login           login federado
//	POST /auth/admin-login     login de administrador
//	GET/POST /staff/ /suppliers/
package nexus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// maxBodyBytes límite de lectura de cualquier respuesta del backend.
const maxBodyBytes = 1 << 20

// APIError rechazo bien formado del backend: trae el detail del servidor
// tal cual, para mostrarlo sin reformular (stock insuficiente, SKU duplicado…).
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("el servidor respondió HTTP %d", e.StatusCode)
}

// RejectionDetail permite a las capas de aplicación distinguir un rechazo de
// negocio de un fallo de transporte sin depender de este paquete.
func (e *APIError) RejectionDetail() string { return e.Error() }

// Client cliente REST del backend NexusRetail.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout acota cada request: una petición
// colgada no debe dejar la terminal en pending indefinidamente.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// do ejecuta una petición JSON contra el backend y deserializa la respuesta en out.
// payload nil ⇒ sin cuerpo; out nil ⇒ respuesta descartada.
// Un status no-2xx con cuerpo {"detail": …} se devuelve como *APIError;
// los fallos de transporte se devuelven envueltos para distinguirlos.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("nexus: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("nexus: crear HTTP request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("nexus: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("nexus: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("nexus: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp dto.ErrorResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Detail != "" {
			apiErr.Detail = errResp.Detail
		}
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("rechazo del backend")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("nexus: deserializar respuesta de %s: %w", path, err)
	}
	return nil
}
