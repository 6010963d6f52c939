// Package pos orquesta la vista de punto de venta: el snapshot del catálogo,
// el caché de pronósticos y el protocolo de checkout contra un backend que
// puede no responder.
package pos

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/nexus-pos/internal/domain"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// CatalogAPI puerto hacia los endpoints de catálogo y pronóstico.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	Predict(ctx context.Context, sku string) (entity.Prediction, error)
}

// Catalog mantiene el snapshot en memoria del catálogo remoto y el caché de
// pronósticos por SKU. El snapshot solo se reemplaza completo vía Refresh;
// ninguna vista lo muta directamente.
type Catalog struct {
	api CatalogAPI
	log *logger.Logger

	mu          sync.Mutex
	products    []entity.Product
	epoch       uuid.UUID
	predictions map[string]entity.Prediction
}

// NewCatalog construye el motor de catálogo con snapshot vacío.
func NewCatalog(api CatalogAPI, log *logger.Logger) *Catalog {
	return &Catalog{
		api:         api,
		log:         log,
		epoch:       uuid.New(),
		predictions: make(map[string]entity.Prediction),
	}
}

// Products devuelve una copia del snapshot actual.
func (c *Catalog) Products() []entity.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find busca un producto por SKU en el snapshot.
func (c *Catalog) Find(sku string) (entity.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.SKU == sku {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Search filtra el snapshot por nombre o SKU (sin distinguir mayúsculas).
// Query vacío devuelve el catálogo completo.
func (c *Catalog) Search(query string) []entity.Product {
	all := c.Products()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all
	}
	out := all[:0]
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.SKU), q) {
			out = append(out, p)
		}
	}
	return out
}

// Refresh descarga el catálogo y reemplaza el snapshot completo. En fallo el
// snapshot previo queda intacto y solo se registra un warning: un catálogo
// viejo o vacío es un estado degradado seguro (backend en cold start).
//
// Guarda anti-stale: el epoch se captura al iniciar; si la sesión cambió
// mientras la descarga estaba en vuelo (sign-out), el resultado tardío se
// descarta en lugar de aplicarse.
func (c *Catalog) Refresh(ctx context.Context) error {
	c.mu.Lock()
	started := c.epoch
	c.mu.Unlock()

	products, err := c.api.ListProducts(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("refresh de catálogo falló; se conserva el snapshot previo")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != started {
		c.log.Debug().Msg("respuesta de catálogo tardía descartada (epoch vencido)")
		return domain.ErrNoSession
	}
	c.products = products
	return nil
}

// Invalidate vacía snapshot y caché y vence cualquier fetch en vuelo
// (sign-out). Los resultados que lleguen después no se aplican.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch = uuid.New()
	c.products = nil
	c.predictions = make(map[string]entity.Prediction)
}

// Prediction devuelve el pronóstico cacheado del SKU o lo pide una única vez
// por sesión. Nunca se re-consulta automáticamente.
func (c *Catalog) Prediction(ctx context.Context, sku string) (entity.Prediction, error) {
	c.mu.Lock()
	if p, ok := c.predictions[sku]; ok {
		c.mu.Unlock()
		return p, nil
	}
	started := c.epoch
	c.mu.Unlock()

	p, err := c.api.Predict(ctx, sku)
	if err != nil {
		return entity.Prediction{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch == started {
		c.predictions[sku] = p
	}
	return p, nil
}

// HasPrediction indica si ya hay pronóstico cacheado para el SKU. Su ausencia
// es la señal para ofrecer el insight bajo demanda en lugar del pronóstico.
func (c *Catalog) HasPrediction(sku string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.predictions[sku]
	return ok
}
