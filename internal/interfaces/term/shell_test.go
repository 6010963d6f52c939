package term_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-pos/internal/application/assistant"
	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/application/navigation"
	"github.com/jhoicas/nexus-pos/internal/application/onboarding"
	"github.com/jhoicas/nexus-pos/internal/application/pos"
	"github.com/jhoicas/nexus-pos/internal/application/session"
	"github.com/jhoicas/nexus-pos/internal/application/usecase"
	"github.com/jhoicas/nexus-pos/internal/domain/cart"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/internal/infrastructure/sessionstore"
	"github.com/jhoicas/nexus-pos/internal/infrastructure/setup"
	"github.com/jhoicas/nexus-pos/internal/interfaces/term"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// backendFalso implementa todos los puertos de red de la aplicación.
type backendFalso struct {
	products []entity.Product
	txID     int
	txErr    error
	chatResp dto.ChatResponse
}

func (b *backendFalso) FederatedLogin(context.Context, string) (entity.UserProfile, error) {
	return entity.UserProfile{}, errors.New("sin backend")
}

func (b *backendFalso) AdminLogin(_ context.Context, user, pass string) (entity.UserProfile, error) {
	if user == "admin" && pass == "nexus123" {
		return entity.UserProfile{Name: "Admin", Email: "admin@nexus.local", Role: entity.RoleManager}, nil
	}
	return entity.UserProfile{}, errors.New("credenciales inválidas")
}

func (b *backendFalso) ListProducts(context.Context) ([]entity.Product, error) {
	return b.products, nil
}

func (b *backendFalso) Predict(context.Context, string) (entity.Prediction, error) {
	return entity.Prediction{PredictedWeeklyDemand: 5, Trend: "Growing"}, nil
}

func (b *backendFalso) CreateTransaction(context.Context, dto.TransactionCreate) (*dto.TransactionCreateResult, error) {
	if b.txErr != nil {
		return nil, b.txErr
	}
	b.txID++
	return &dto.TransactionCreateResult{Status: "success", TransactionID: b.txID}, nil
}

func (b *backendFalso) ListTransactions(context.Context) ([]entity.Transaction, error) {
	return nil, nil
}

func (b *backendFalso) Chat(context.Context, string) (dto.ChatResponse, error) {
	return b.chatResp, nil
}

func (b *backendFalso) CreateProduct(_ context.Context, in dto.CreateProductRequest) (entity.Product, error) {
	return entity.Product{SKU: in.SKU, Name: in.Name}, nil
}

func (b *backendFalso) UpdateStock(context.Context, string, int) error { return nil }

func (b *backendFalso) ListStaff(context.Context) ([]entity.Staff, error) { return nil, nil }

func (b *backendFalso) CreateStaff(_ context.Context, in dto.CreateStaffRequest) (entity.Staff, error) {
	return entity.Staff{ID: 1, Name: in.Name, Role: in.Role}, nil
}

func (b *backendFalso) ListSuppliers(context.Context) ([]entity.Supplier, error) { return nil, nil }

func (b *backendFalso) CreateSupplier(_ context.Context, in dto.CreateSupplierRequest) (entity.Supplier, error) {
	return entity.Supplier{ID: 1, Name: in.Name}, nil
}

// armarTerminal cablea una terminal completa sobre el backend falso.
func armarTerminal(t *testing.T, backend *backendFalso, script string) (*term.Shell, *bytes.Buffer, *sessionstore.Store) {
	t.Helper()
	log := logger.NewNop()
	store, err := sessionstore.New(t.TempDir())
	require.NoError(t, err)

	nav := navigation.NewController()
	sess := session.NewUseCase(backend, store, nav, log)
	catalog := pos.NewCatalog(backend, log)
	carrito := cart.New()
	checkout := pos.NewCheckout(backend, catalog, nil, log)
	flow := onboarding.NewFlow(store, setup.NewFastSimulator(log), catalog, log)
	asst := assistant.New(backend, nav, log)

	var out bytes.Buffer
	sh := term.NewShell(term.Deps{
		Session:   sess,
		Flow:      flow,
		Nav:       nav,
		Catalog:   catalog,
		Cart:      carrito,
		Checkout:  checkout,
		Assistant: asst,
		Products:  usecase.NewProductUseCase(backend, catalog, log),
		Staff:     usecase.NewStaffUseCase(backend, log),
		Reports:   usecase.NewReportsUseCase(backend, log),
		Dashboard: usecase.NewDashboardUseCase(catalog),
		Store:     store,
		Timeout:   5 * time.Second,
		In:        strings.NewReader(script),
		Out:       &out,
		Log:       log,
	})
	return sh, &out, store
}

func productosDemo() []entity.Product {
	return []entity.Product{
		{SKU: "COKE-330", Name: "Coca-Cola 330ml", SellingPrice: decimal.NewFromFloat(9.99), StockQuantity: 100},
		{SKU: "BREAD-W", Name: "Pan blanco", SellingPrice: decimal.NewFromFloat(14.50), StockQuantity: 4},
	}
}

// Primera corrida: invitado pasa la puerta, el asistente de configuración es
// modal y el nombre de la tienda queda persistido.
func TestShell_PrimeraCorridaConfiguraLaTienda(t *testing.T) {
	backend := &backendFalso{products: productosDemo()}
	sh, out, store := armarTerminal(t, backend, "3\nMi Tienda\nsalir\n")

	require.NoError(t, sh.Run(context.Background()))

	salida := out.String()
	assert.Contains(t, salida, "Sesión de invitado iniciada")
	assert.Contains(t, salida, "Configuración inicial")
	assert.Contains(t, salida, "Configuración completada")

	name, err := store.StoreName()
	require.NoError(t, err)
	assert.Equal(t, "Mi Tienda", name)
	done, err := store.OnboardingComplete()
	require.NoError(t, err)
	assert.True(t, done)
}

// Con la marca de completado presente el asistente de configuración no vuelve
// a correr.
func TestShell_SegundaCorridaSinConfiguracion(t *testing.T) {
	backend := &backendFalso{products: productosDemo()}
	sh, out, store := armarTerminal(t, backend, "3\nsalir\n")
	require.NoError(t, store.SetStoreName("Mi Tienda"))
	require.NoError(t, store.MarkOnboardingComplete())

	require.NoError(t, sh.Run(context.Background()))

	assert.NotContains(t, out.String(), "Nombre de la tienda:")
}

func TestShell_VentaCompletaDesdeElPOS(t *testing.T) {
	backend := &backendFalso{products: productosDemo()}
	script := "3\nir pos\nagregar COKE-330 2\ncobrar\nsalir\n"
	sh, out, store := armarTerminal(t, backend, script)
	require.NoError(t, store.MarkOnboardingComplete())

	require.NoError(t, sh.Run(context.Background()))

	salida := out.String()
	assert.Contains(t, salida, "Punto de venta")
	assert.Contains(t, salida, "2x Coca-Cola 330ml")
	assert.Contains(t, salida, "Venta N° 1 registrada")
}

// El rechazo del backend llega tal cual y el carrito sobrevive para
// reintentar.
func TestShell_RechazoDeVentaConservaElCarrito(t *testing.T) {
	backend := &backendFalso{products: productosDemo(), txErr: &rechazoFalso{"Not enough stock"}}
	script := "3\nir pos\nagregar BREAD-W\ncobrar\ncarrito\nsalir\n"
	sh, out, store := armarTerminal(t, backend, script)
	require.NoError(t, store.MarkOnboardingComplete())

	require.NoError(t, sh.Run(context.Background()))

	salida := out.String()
	assert.Contains(t, salida, "Venta rechazada: Not enough stock")
	assert.Contains(t, strings.TrimSpace(salida[strings.LastIndex(salida, "Venta rechazada"):]), "Pan blanco")
}

type rechazoFalso struct{ detail string }

func (e *rechazoFalso) Error() string           { return e.detail }
func (e *rechazoFalso) RejectionDetail() string { return e.detail }

// El invitado (Viewer) ve el aviso de acceso denegado en las vistas de
// Manager; el administrador no.
func TestShell_VistasRestringidasPorRol(t *testing.T) {
	backend := &backendFalso{products: productosDemo()}
	sh, out, store := armarTerminal(t, backend, "3\nir reports\nsalir\n")
	require.NoError(t, store.MarkOnboardingComplete())

	require.NoError(t, sh.Run(context.Background()))
	assert.Contains(t, out.String(), "Acceso denegado")

	backend2 := &backendFalso{products: productosDemo()}
	sh2, out2, store2 := armarTerminal(t, backend2, "2\nadmin\nnexus123\nir reports\nsalir\n")
	require.NoError(t, store2.MarkOnboardingComplete())

	require.NoError(t, sh2.Run(context.Background()))
	salida := out2.String()
	assert.Contains(t, salida, "Bienvenido, Admin (Manager)")
	assert.Contains(t, salida, "Reportes de ventas")
	assert.NotContains(t, salida, "Acceso denegado")
}

// El comando de navegación remota del asistente cambia la vista activa.
func TestShell_NavegacionRemotaDelAsistente(t *testing.T) {
	backend := &backendFalso{
		products: productosDemo(),
		chatResp: dto.ChatResponse{Text: "Abriendo el inventario.", Action: "NAVIGATE_INVENTORY"},
	}
	script := "3\nir chat\nllévame al inventario\nsalir\n"
	sh, out, store := armarTerminal(t, backend, script)
	require.NoError(t, store.MarkOnboardingComplete())

	require.NoError(t, sh.Run(context.Background()))

	salida := out.String()
	assert.Contains(t, salida, "nexus: Abriendo el inventario.")
	assert.Contains(t, salida, "== Inventario ==")
	assert.Contains(t, salida, "[inventory] >")
}

// Cerrar sesión vuelve a la puerta de identidad y limpia el estado local.
func TestShell_CerrarSesionVuelveALaPuerta(t *testing.T) {
	backend := &backendFalso{products: productosDemo()}
	script := "3\nir pos\nagregar COKE-330\ncerrar-sesion\n4\n"
	sh, out, store := armarTerminal(t, backend, script)
	require.NoError(t, store.MarkOnboardingComplete())

	require.NoError(t, sh.Run(context.Background()))

	salida := out.String()
	assert.Contains(t, salida, "Sesión cerrada")
	// la puerta reaparece tras el cierre
	assert.Greater(t, strings.Count(salida, "Continuar como invitado"), 1)

	profile, err := store.LoadProfile()
	require.NoError(t, err)
	assert.Nil(t, profile)
}
