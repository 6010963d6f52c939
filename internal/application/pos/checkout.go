package pos

import (
	"context"
	"errors"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/domain"
	"github.com/jhoicas/nexus-pos/internal/domain/cart"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// PaymentMethodCash método de pago fijo de la terminal.
const PaymentMethodCash = "CASH"

// TransactionAPI puerto hacia el endpoint de ventas.
type TransactionAPI interface {
	CreateTransaction(ctx context.Context, in dto.TransactionCreate) (*dto.TransactionCreateResult, error)
}

// ReceiptWriter puerto opcional: escritura del recibo de una venta exitosa.
type ReceiptWriter interface {
	WriteReceipt(storeName string, transactionID int, items []cart.Item, totals cart.Totals) (string, error)
}

// Outcome desenlace de un intento de checkout.
type Outcome int

const (
	// OutcomeSuccess venta registrada: carrito vaciado y catálogo re-descargado.
	OutcomeSuccess Outcome = iota
	// OutcomeRejected rechazo de negocio bien formado (stock insuficiente…);
	// el carrito queda intacto para ajustar y reintentar.
	OutcomeRejected
	// OutcomeNetworkError el backend no respondió; el carrito queda intacto.
	OutcomeNetworkError
)

// Result resultado de un checkout, con el mensaje listo para mostrar.
type Result struct {
	Outcome       Outcome
	Message       string
	TransactionID int
	Totals        cart.Totals
	ReceiptPath   string // vacío si no se generó recibo
}

// rejection cualquier error que porte un detail de rechazo del servidor.
type rejection interface {
	RejectionDetail() string
}

// Checkout protocolo de cierre de venta.
type Checkout struct {
	api      TransactionAPI
	catalog  *Catalog
	receipts ReceiptWriter // puede ser nil
	log      *logger.Logger
}

// NewCheckout construye el protocolo. receipts admite nil (sin recibos PDF).
func NewCheckout(api TransactionAPI, catalog *Catalog, receipts ReceiptWriter, log *logger.Logger) *Checkout {
	return &Checkout{api: api, catalog: catalog, receipts: receipts, log: log}
}

// Run ejecuta el checkout del carrito:
//
//  1. Precondición: carrito no vacío; vacío ⇒ domain.ErrEmptyCart sin tocar la red.
//  2. El request lleva método de pago y (sku, cantidad) por línea; los precios
//     los recalcula el servidor.
//  3. Un único POST atómico con tres desenlaces: éxito (vaciar carrito, un
//     re-fetch de catálogo secuenciado después de la respuesta, recibo),
//     rechazo (detail verbatim, carrito intacto) o fallo de red (aviso
//     genérico, carrito intacto).
//
// No hay reintento automático: reintentar es una acción manual del usuario.
func (ck *Checkout) Run(ctx context.Context, storeName string, c *cart.Cart) (Result, error) {
	if c.IsEmpty() {
		return Result{}, domain.ErrEmptyCart
	}

	items := c.Items()
	req := dto.TransactionCreate{
		PaymentMethod: PaymentMethodCash,
		Items:         make([]dto.TransactionItemCreate, 0, len(items)),
	}
	for _, it := range items {
		req.Items = append(req.Items, dto.TransactionItemCreate{
			ProductSKU: it.Product.SKU,
			Quantity:   it.Qty,
		})
	}

	totals := cart.ComputeTotals(c)

	created, err := ck.api.CreateTransaction(ctx, req)
	if err != nil {
		var rej rejection
		if errors.As(err, &rej) {
			ck.log.Info().Str("detail", rej.RejectionDetail()).Msg("venta rechazada por el backend")
			return Result{Outcome: OutcomeRejected, Message: rej.RejectionDetail(), Totals: totals}, nil
		}
		ck.log.Warn().Err(err).Msg("checkout sin respuesta del backend")
		return Result{Outcome: OutcomeNetworkError, Message: "sin conexión con el servidor; la venta no se registró", Totals: totals}, nil
	}

	// Éxito: el carrito se vacía incondicionalmente y el re-fetch de catálogo
	// se secuencia estrictamente después de la respuesta del checkout.
	c.Clear()
	if err := ck.catalog.Refresh(ctx); err != nil {
		ck.log.Warn().Err(err).Msg("re-fetch de catálogo tras la venta falló")
	}

	result := Result{
		Outcome:       OutcomeSuccess,
		Message:       "venta registrada; inventario actualizado",
		TransactionID: created.TransactionID,
		Totals:        totals,
	}
	if ck.receipts != nil {
		path, err := ck.receipts.WriteReceipt(storeName, created.TransactionID, items, totals)
		if err != nil {
			// El recibo nunca hace fallar una venta ya registrada.
			ck.log.Warn().Err(err).Msg("no se pudo escribir el recibo PDF")
		} else {
			result.ReceiptPath = path
		}
	}
	return result, nil
}
