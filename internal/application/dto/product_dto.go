package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

// ProductDTO forma de cable de GET /products/.
type ProductDTO struct {
	ID            int             `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category"`
	Images        []string        `json:"images,omitempty"`
}

// CreateProductRequest cuerpo de POST /products/ (producto sin id).
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQuantity int             `json:"stock_quantity"`
	Category      string          `json:"category"`
}

// StockUpdateRequest cuerpo de PUT /products/{sku}/stock.
type StockUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// ToProduct convierte la forma de cable a entidad de dominio.
func (d ProductDTO) ToProduct() entity.Product {
	return entity.Product{
		ID:            d.ID,
		SKU:           d.SKU,
		Name:          d.Name,
		CostPrice:     d.CostPrice,
		SellingPrice:  d.SellingPrice,
		StockQuantity: d.StockQuantity,
		Category:      d.Category,
		Images:        d.Images,
	}
}

// ToProducts convierte un listado completo.
func ToProducts(dtos []ProductDTO) []entity.Product {
	out := make([]entity.Product, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ToProduct())
	}
	return out
}
