package pos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-pos/internal/application/pos"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalogAPI struct {
	products   []entity.Product
	listErr    error
	listCalls  int
	onList     func() // hook ejecutado durante el fetch (simula eventos en vuelo)
	prediction entity.Prediction
	predictErr error
	predCalls  int
}

func (f *fakeCatalogAPI) ListProducts(context.Context) ([]entity.Product, error) {
	f.listCalls++
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeCatalogAPI) Predict(_ context.Context, sku string) (entity.Prediction, error) {
	f.predCalls++
	if f.predictErr != nil {
		return entity.Prediction{}, f.predictErr
	}
	p := f.prediction
	p.SKU = sku
	return p, nil
}

func productoPrueba(sku string, precio float64, stock int) entity.Product {
	return entity.Product{
		SKU:           sku,
		Name:          "Producto " + sku,
		SellingPrice:  decimal.NewFromFloat(precio),
		StockQuantity: stock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_RefreshReemplazaElSnapshot(t *testing.T) {
	api := &fakeCatalogAPI{products: []entity.Product{productoPrueba("A", 10, 5)}}
	cat := pos.NewCatalog(api, logger.NewNop())

	require.Empty(t, cat.Products(), "el snapshot inicia vacío")
	require.NoError(t, cat.Refresh(context.Background()))
	require.Len(t, cat.Products(), 1)

	api.products = []entity.Product{productoPrueba("B", 20, 3), productoPrueba("C", 30, 8)}
	require.NoError(t, cat.Refresh(context.Background()))

	productos := cat.Products()
	require.Len(t, productos, 2, "el reemplazo es completo, no incremental")
	assert.Equal(t, "B", productos[0].SKU)
}

// El fallo del fetch conserva el snapshot previo (estado degradado seguro).
func TestCatalog_RefreshFallidoConservaSnapshot(t *testing.T) {
	api := &fakeCatalogAPI{products: []entity.Product{productoPrueba("A", 10, 5)}}
	cat := pos.NewCatalog(api, logger.NewNop())
	require.NoError(t, cat.Refresh(context.Background()))

	api.listErr = errors.New("cold start")
	err := cat.Refresh(context.Background())

	require.Error(t, err)
	assert.Len(t, cat.Products(), 1, "el snapshot previo queda intacto")
}

// Guarda anti-stale: un resultado que llega después del sign-out se descarta.
func TestCatalog_RespuestaTardiaDescartada(t *testing.T) {
	api := &fakeCatalogAPI{products: []entity.Product{productoPrueba("A", 10, 5)}}
	cat := pos.NewCatalog(api, logger.NewNop())

	// Mientras el fetch está en vuelo, la sesión se cierra.
	api.onList = func() { cat.Invalidate() }
	err := cat.Refresh(context.Background())

	require.Error(t, err)
	assert.Empty(t, cat.Products(), "el resultado vencido no se aplica")
}

func TestCatalog_FindYSearch(t *testing.T) {
	api := &fakeCatalogAPI{products: []entity.Product{
		productoPrueba("COKE-330", 9.99, 100),
		productoPrueba("BREAD-W", 14.5, 4),
	}}
	cat := pos.NewCatalog(api, logger.NewNop())
	require.NoError(t, cat.Refresh(context.Background()))

	p, ok := cat.Find("BREAD-W")
	require.True(t, ok)
	assert.Equal(t, "BREAD-W", p.SKU)

	_, ok = cat.Find("NO-EXISTE")
	assert.False(t, ok)

	assert.Len(t, cat.Search(""), 2)
	assert.Len(t, cat.Search("coke"), 1)
	assert.Len(t, cat.Search("producto"), 2, "busca por nombre sin distinguir mayúsculas")
	assert.Empty(t, cat.Search("zzz"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Caché de pronósticos
// ──────────────────────────────────────────────────────────────────────────────

// El pronóstico se pide una sola vez por SKU y por sesión.
func TestCatalog_PrediccionSeCacheaPorSesion(t *testing.T) {
	api := &fakeCatalogAPI{prediction: entity.Prediction{PredictedWeeklyDemand: 42, Trend: "Growing"}}
	cat := pos.NewCatalog(api, logger.NewNop())

	assert.False(t, cat.HasPrediction("A"), "sin caché se ofrece el insight bajo demanda")

	p1, err := cat.Prediction(context.Background(), "A")
	require.NoError(t, err)
	p2, err := cat.Prediction(context.Background(), "A")
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, 1, api.predCalls, "nunca se re-consulta automáticamente")
	assert.True(t, cat.HasPrediction("A"))
}

func TestCatalog_PrediccionFallidaNoSeCachea(t *testing.T) {
	api := &fakeCatalogAPI{predictErr: errors.New("sin respuesta")}
	cat := pos.NewCatalog(api, logger.NewNop())

	_, err := cat.Prediction(context.Background(), "A")
	require.Error(t, err)
	assert.False(t, cat.HasPrediction("A"))

	// Al recuperarse el backend, el siguiente pedido sí se sirve y cachea.
	api.predictErr = nil
	api.prediction = entity.Prediction{PredictedWeeklyDemand: 7}
	_, err = cat.Prediction(context.Background(), "A")
	require.NoError(t, err)
	assert.True(t, cat.HasPrediction("A"))
}

// Invalidate limpia snapshot y caché de pronósticos.
func TestCatalog_InvalidateLimpiaTodo(t *testing.T) {
	api := &fakeCatalogAPI{
		products:   []entity.Product{productoPrueba("A", 10, 5)},
		prediction: entity.Prediction{PredictedWeeklyDemand: 3},
	}
	cat := pos.NewCatalog(api, logger.NewNop())
	require.NoError(t, cat.Refresh(context.Background()))
	_, err := cat.Prediction(context.Background(), "A")
	require.NoError(t, err)

	cat.Invalidate()

	assert.Empty(t, cat.Products())
	assert.False(t, cat.HasPrediction("A"))
}
