package term

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/application/navigation"
	"github.com/jhoicas/nexus-pos/internal/application/pos"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/money"
)

// requiredRoles vistas restringidas. Las ausentes son de acceso libre.
var requiredRoles = map[navigation.View]entity.Role{
	navigation.ViewAddProduct: entity.RoleManager,
	navigation.ViewReports:    entity.RoleManager,
	navigation.ViewStaff:      entity.RoleManager,
	navigation.ViewSuppliers:  entity.RoleManager,
}

// allowed decide si la vista activa puede renderizarse con el rol actual.
func (s *Shell) allowed(v navigation.View) bool {
	required, restricted := requiredRoles[v]
	if !restricted {
		return true
	}
	return s.session.Authorize(required)
}

// render imprime la vista activa, o el aviso de acceso denegado si el rol no
// alcanza. La navegación en sí nunca se bloquea.
func (s *Shell) render(ctx context.Context) {
	v := s.nav.Active()
	if !s.allowed(v) {
		s.printf("\n== Acceso denegado ==\nEsta vista requiere rol Manager.\n")
		return
	}
	switch v {
	case navigation.ViewDashboard:
		s.renderDashboard()
	case navigation.ViewPOS:
		s.renderPOS()
	case navigation.ViewChat:
		s.renderChat()
	case navigation.ViewAddProduct:
		s.printf("\n== Alta de producto ==\nEscribe: nuevo\n")
	case navigation.ViewInventory:
		s.renderInventory()
	case navigation.ViewReports:
		s.renderReports(ctx)
	case navigation.ViewStaff:
		s.renderStaff(ctx)
	case navigation.ViewSuppliers:
		s.renderSuppliers(ctx)
	case navigation.ViewSettings:
		s.renderSettings()
	}
}

// dispatch ejecuta un comando propio de la vista activa. En la vista de chat
// cualquier texto no reconocido se envía al asistente.
func (s *Shell) dispatch(ctx context.Context, cmd string, args []string, line string) {
	v := s.nav.Active()
	if !s.allowed(v) {
		s.printf("Acceso denegado\n")
		return
	}
	switch v {
	case navigation.ViewPOS:
		s.dispatchPOS(ctx, cmd, args)
	case navigation.ViewChat:
		s.sendChat(ctx, line)
	case navigation.ViewInventory:
		s.dispatchInventory(ctx, cmd, args)
	case navigation.ViewAddProduct:
		if cmd == "nuevo" {
			s.addProductForm(ctx)
			return
		}
		s.printf("Comando desconocido: %s\n", cmd)
	case navigation.ViewStaff:
		if cmd == "alta" {
			s.addStaffForm(ctx)
			return
		}
		s.printf("Comando desconocido: %s\n", cmd)
	case navigation.ViewSuppliers:
		if cmd == "alta" {
			s.addSupplierForm(ctx)
			return
		}
		s.printf("Comando desconocido: %s\n", cmd)
	default:
		s.printf("Comando desconocido: %s (prueba: ayuda)\n", cmd)
	}
}

// ── Tablero ───────────────────────────────────────────────────────────────────

func (s *Shell) renderDashboard() {
	name, err := s.store.StoreName()
	if err != nil || name == "" {
		name = "NexusRetail"
	}
	stats := s.dashboard.Stats()

	s.printf("\n== %s ==\n", name)
	if p := s.session.Current(); p != nil {
		s.printf("Usuario: %s (%s)\n", p.Name, p.Role)
	}
	s.printf("Productos en catálogo: %d\n", stats.ProductCount)
	s.printf("Valor del inventario (costo): %s\n", money.Format(stats.InventoryCost))
	if len(stats.LowStock) > 0 {
		s.printf("Stock bajo (%d):\n", len(stats.LowStock))
		for _, p := range stats.LowStock {
			s.printf("  %-12s %-24s %d uds\n", p.SKU, p.Name, p.StockQuantity)
		}
	}
}

// ── Punto de venta ────────────────────────────────────────────────────────────

func (s *Shell) renderPOS() {
	s.printf("\n== Punto de venta ==\n")
	s.printProducts(s.catalog.Products())
	s.printCart()
}

func (s *Shell) printProducts(products []entity.Product) {
	if len(products) == 0 {
		s.printf("(catálogo vacío)\n")
		return
	}
	for _, p := range products {
		s.printf("  %-12s %-24s %12s  stock %d\n",
			p.SKU, p.Name, money.Format(p.SellingPrice), p.StockQuantity)
	}
}

func (s *Shell) printCart() {
	if s.cart.IsEmpty() {
		s.printf("Carrito vacío\n")
		return
	}
	s.printf("Carrito:\n")
	for _, it := range s.cart.Items() {
		s.printf("  %dx %-24s %12s\n", it.Qty, it.Product.Name,
			money.Format(it.Product.SellingPrice.Mul(decimal.NewFromInt(int64(it.Qty)))))
	}
	totals := s.cartTotals()
	s.printf("Subtotal %s | Impuesto (15%%) %s | Total %s\n",
		money.Format(totals.Subtotal), money.Format(totals.Tax), money.Format(totals.Total))
}

func (s *Shell) dispatchPOS(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "agregar":
		if len(args) == 0 {
			s.printf("Uso: agregar <sku> [cantidad]\n")
			return
		}
		product, ok := s.catalog.Find(args[0])
		if !ok {
			s.printf("SKU desconocido: %s\n", args[0])
			return
		}
		qty := 1
		if len(args) > 1 {
			n, err := parsePositive(args[1])
			if err != nil {
				s.printf("%v\n", err)
				return
			}
			qty = n
		}
		for i := 0; i < qty; i++ {
			s.cart.Add(product)
		}
		s.printCart()

	case "buscar":
		if len(args) == 0 {
			s.printf("Uso: buscar <texto>\n")
			return
		}
		s.printProducts(s.catalog.Search(strings.Join(args, " ")))

	case "carrito":
		s.printCart()

	case "vaciar":
		s.cart.Clear()
		s.printf("Carrito vacío\n")

	case "cobrar":
		s.runCheckout(ctx)

	default:
		s.printf("Comando desconocido: %s (prueba: ayuda)\n", cmd)
	}
}

func (s *Shell) runCheckout(ctx context.Context) {
	name, err := s.store.StoreName()
	if err != nil {
		name = ""
	}
	callCtx, cancel := s.callCtx(ctx)
	defer cancel()
	result, err := s.checkout.Run(callCtx, name, s.cart)
	if err != nil {
		s.printf("No hay nada que cobrar: el carrito está vacío\n")
		return
	}
	switch result.Outcome {
	case pos.OutcomeSuccess:
		s.printf("Venta N° %d registrada. Total %s\n", result.TransactionID, money.Format(result.Totals.Total))
		if result.ReceiptPath != "" {
			s.printf("Recibo: %s\n", result.ReceiptPath)
		}
	case pos.OutcomeRejected:
		s.printf("Venta rechazada: %s\n", result.Message)
	case pos.OutcomeNetworkError:
		s.printf("%s\n", result.Message)
	}
}

// ── Chat ──────────────────────────────────────────────────────────────────────

func (s *Shell) renderChat() {
	s.printf("\n== Asistente Nexus AI ==\n")
	for _, msg := range s.assistant.Transcript() {
		s.printf("%s: %s\n", msg.Sender, msg.Text)
	}
}

func (s *Shell) sendChat(ctx context.Context, text string) {
	callCtx, cancel := s.callCtx(ctx)
	defer cancel()
	view, err := s.assistant.Send(callCtx, text)
	if err != nil {
		s.printf("Mensaje vacío\n")
		return
	}
	tr := s.assistant.Transcript()
	s.printf("nexus: %s\n", tr[len(tr)-1].Text)
	if view != "" {
		s.render(ctx)
	}
}

// ── Inventario ────────────────────────────────────────────────────────────────

func (s *Shell) renderInventory() {
	s.printf("\n== Inventario ==\n")
	for _, p := range s.catalog.Products() {
		marker := "  "
		if p.IsLowStock() {
			marker = "! "
		}
		s.printf("%s%-12s %-24s costo %10s  venta %10s  stock %d\n",
			marker, p.SKU, p.Name, money.Format(p.CostPrice), money.Format(p.SellingPrice), p.StockQuantity)
	}
}

func (s *Shell) dispatchInventory(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "stock":
		if !s.session.Authorize(entity.RoleManager) {
			s.printf("El ajuste de stock requiere rol Manager\n")
			return
		}
		if len(args) != 2 {
			s.printf("Uso: stock <sku> <cantidad>\n")
			return
		}
		qty, err := parsePositive(args[1])
		if err != nil {
			s.printf("%v\n", err)
			return
		}
		callCtx, cancel := s.callCtx(ctx)
		defer cancel()
		if err := s.products.AdjustStock(callCtx, args[0], qty); err != nil {
			s.printf("No se pudo ajustar el stock: %v\n", err)
			return
		}
		s.printf("Stock de %s fijado en %d\n", args[0], qty)

	case "prediccion":
		if len(args) != 1 {
			s.printf("Uso: prediccion <sku>\n")
			return
		}
		callCtx, cancel := s.callCtx(ctx)
		defer cancel()
		pred, err := s.catalog.Prediction(callCtx, args[0])
		if err != nil {
			s.printf("Sin pronóstico disponible: %v\n", err)
			return
		}
		s.printf("Demanda semanal estimada: %d uds (%s)\n%s\n",
			pred.PredictedWeeklyDemand, pred.Trend, pred.Recommendation)

	default:
		s.printf("Comando desconocido: %s (prueba: ayuda)\n", cmd)
	}
}

// ── Alta de producto ──────────────────────────────────────────────────────────

func (s *Shell) addProductForm(ctx context.Context) {
	sku, err := readLine(s.in, s.out, "SKU: ")
	if err != nil {
		return
	}
	name, err := readLine(s.in, s.out, "Nombre: ")
	if err != nil {
		return
	}
	cost, err := readDecimal(s.in, s.out, "Costo: ")
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	price, err := readDecimal(s.in, s.out, "Precio de venta: ")
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	stock, err := readInt(s.in, s.out, "Stock inicial: ")
	if err != nil {
		s.printf("%v\n", err)
		return
	}
	category, err := readLine(s.in, s.out, "Categoría: ")
	if err != nil {
		return
	}

	callCtx, cancel := s.callCtx(ctx)
	defer cancel()
	created, err := s.products.Add(callCtx, dto.CreateProductRequest{
		SKU:           sku,
		Name:          name,
		CostPrice:     cost,
		SellingPrice:  price,
		StockQuantity: stock,
		Category:      category,
	})
	if err != nil {
		s.printf("No se pudo registrar el producto: %v\n", err)
		return
	}
	s.printf("Producto %s registrado\n", created.SKU)
}

// ── Reportes ──────────────────────────────────────────────────────────────────

func (s *Shell) renderReports(ctx context.Context) {
	s.printf("\n== Reportes de ventas ==\n")
	callCtx, cancel := s.callCtx(ctx)
	defer cancel()
	report, err := s.reports.SalesReport(callCtx)
	if err != nil {
		s.printf("No se pudo descargar el historial: %v\n", err)
		return
	}
	s.printf("Ventas: %d | Ingresos: %s\n", report.Count, money.Format(report.TotalRevenue))
	for _, tx := range report.Transactions {
		s.printf("  N° %-6d %s  %10s  %s\n",
			tx.ID, tx.Timestamp.Format("02/01/2006 15:04"), money.Format(tx.TotalAmount), tx.PaymentMethod)
	}
}

// ── Personal y proveedores ────────────────────────────────────────────────────

func (s *Shell) renderStaff(ctx context.Context) {
	s.printf("\n== Personal ==\n")
	callCtx, cancel := s.callCtx(ctx)
	defer cancel()
	staff, err := s.staff.ListStaff(callCtx)
	if err != nil {
		s.printf("No se pudo descargar el personal: %v\n", err)
		return
	}
	for _, m := range staff {
		s.printf("  %-4d %-20s %s\n", m.ID, m.Name, m.Role)
	}
}

func (s *Shell) addStaffForm(ctx context.Context) {
	name, err := readLine(s.in, s.out, "Nombre: ")
	if err != nil {
		return
	}
	role, err := readLine(s.in, s.out, "Rol (Cashier/Manager): ")
	if err != nil {
		return
	}
	passcode, err := readSecret(s.in, s.out, "Passcode (4 dígitos): ")
	if err != nil {
		return
	}
	callCtx, cancel := s.callCtx(ctx)
	defer cancel()
	created, err := s.staff.AddStaff(callCtx, dto.CreateStaffRequest{Name: name, Role: role, Passcode: passcode})
	if err != nil {
		s.printf("No se pudo registrar: %v\n", err)
		return
	}
	s.printf("%s registrado\n", created.Name)
}

func (s *Shell) renderSuppliers(ctx context.Context) {
	s.printf("\n== Proveedores ==\n")
	callCtx, cancel := s.callCtx(ctx)
	defer cancel()
	suppliers, err := s.staff.ListSuppliers(callCtx)
	if err != nil {
		s.printf("No se pudo descargar los proveedores: %v\n", err)
		return
	}
	for _, sup := range suppliers {
		s.printf("  %-4d %-24s %-28s %s\n", sup.ID, sup.Name, sup.ContactEmail, sup.Phone)
	}
}

func (s *Shell) addSupplierForm(ctx context.Context) {
	name, err := readLine(s.in, s.out, "Nombre: ")
	if err != nil {
		return
	}
	email, err := readLine(s.in, s.out, "Email de contacto: ")
	if err != nil {
		return
	}
	phone, err := readLine(s.in, s.out, "Teléfono: ")
	if err != nil {
		return
	}
	callCtx, cancel := s.callCtx(ctx)
	defer cancel()
	created, err := s.staff.AddSupplier(callCtx, dto.CreateSupplierRequest{Name: name, ContactEmail: email, Phone: phone})
	if err != nil {
		s.printf("No se pudo registrar: %v\n", err)
		return
	}
	s.printf("%s registrado\n", created.Name)
}

// ── Ajustes ───────────────────────────────────────────────────────────────────

func (s *Shell) renderSettings() {
	s.printf("\n== Ajustes ==\n")
	name, err := s.store.StoreName()
	if err == nil && name != "" {
		s.printf("Tienda: %s\n", name)
	}
	if p := s.session.Current(); p != nil {
		s.printf("Usuario: %s <%s>\nRol: %s\n", p.Name, p.Email, p.Role)
		if p.Degraded {
			s.printf("Sesión en modo degradado (sin validación del servidor)\n")
		}
	}
}
