// Package navigation mantiene la vista activa de la aplicación. Cualquier
// componente puede pedir una transición (incluido el asistente, cuyas
// respuestas remotas pueden traer un comando de navegación); el controlador
// la aplica sin guardas: la autorización es una decisión de render del gate
// de identidad, no de navegación.
package navigation

import "sync"

// View identificador de vista. Conjunto cerrado.
type View string

const (
	ViewDashboard  View = "dashboard"
	ViewPOS        View = "pos"
	ViewChat       View = "chat"
	ViewAddProduct View = "add-product"
	ViewInventory  View = "inventory"
	ViewReports    View = "reports"
	ViewStaff      View = "staff"
	ViewSuppliers  View = "suppliers"
	ViewSettings   View = "settings"
)

// DefaultView vista inicial y de retorno tras el sign-out.
const DefaultView = ViewDashboard

// Views el conjunto completo, en orden de menú.
var Views = []View{
	ViewDashboard, ViewPOS, ViewChat, ViewAddProduct, ViewInventory,
	ViewReports, ViewStaff, ViewSuppliers, ViewSettings,
}

// IsValid indica si la vista pertenece al conjunto cerrado.
func (v View) IsValid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

// actionViews mapeo de comandos NAVIGATE_* del asistente a vistas.
var actionViews = map[string]View{
	"NAVIGATE_DASHBOARD":   ViewDashboard,
	"NAVIGATE_POS":         ViewPOS,
	"NAVIGATE_CHAT":        ViewChat,
	"NAVIGATE_ADD_PRODUCT": ViewAddProduct,
	"NAVIGATE_INVENTORY":   ViewInventory,
	"NAVIGATE_REPORTS":     ViewReports,
	"NAVIGATE_STAFF":       ViewStaff,
	"NAVIGATE_SUPPLIERS":   ViewSuppliers,
	"NAVIGATE_SETTINGS":    ViewSettings,
}

// ViewForAction resuelve un comando de navegación remoto. ok=false para
// acciones ausentes o desconocidas (se ignoran, nunca rompen el chat).
func ViewForAction(action string) (View, bool) {
	v, ok := actionViews[action]
	return v, ok
}

// Controller selector de vista activa. Siempre hay exactamente una.
type Controller struct {
	mu     sync.Mutex
	active View
}

// NewController arranca en la vista por defecto.
func NewController() *Controller {
	return &Controller{active: DefaultView}
}

// Active devuelve la vista actualmente montada.
func (c *Controller) Active() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Navigate aplica la transición. Una vista fuera del conjunto cerrado se
// ignora y se conserva la actual (devuelve false).
func (c *Controller) Navigate(v View) bool {
	if !v.IsValid() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = v
	return true
}

// Reset vuelve a la vista por defecto (sign-out).
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = DefaultView
}
