// Package cart implementa el carrito de venta como dominio puro: consolidación
// por SKU, orden de inserción y agregación monetaria, sin efectos externos.
package cart

import "github.com/jhoicas/nexus-pos/internal/domain/entity"

// Item línea del carrito: el producto más la cantidad acumulada.
type Item struct {
	Product entity.Product
	Qty     int // siempre >= 1
}

// Cart carrito de una venta en curso. Vive solo en memoria durante la sesión POS.
// Invariantes: a lo sumo una línea por SKU; el orden de las líneas es el orden
// de la primera adición; Qty >= 1 en toda línea.
type Cart struct {
	items []Item
}

// New construye un carrito vacío.
func New() *Cart {
	return &Cart{}
}

// Add agrega un producto. Si ya existe una línea con el mismo SKU incrementa
// su cantidad; si no, agrega una línea nueva al final con Qty 1. Búsqueda
// lineal por SKU: los carritos son pequeños (SKUs distintos de una venta).
func (c *Cart) Add(p entity.Product) {
	for i := range c.items {
		if c.items[i].Product.SKU == p.SKU {
			c.items[i].Qty++
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Qty: 1})
}

// Items devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len cantidad de líneas (SKUs distintos).
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear vacía el carrito (checkout exitoso o limpieza explícita).
func (c *Cart) Clear() {
	c.items = nil
}

// TotalUnits suma de cantidades de todas las líneas.
func (c *Cart) TotalUnits() int {
	n := 0
	for _, it := range c.items {
		n += it.Qty
	}
	return n
}
