package nexus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

// ListProducts descarga el catálogo completo (GET /products/).
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var dtos []dto.ProductDTO
	if err := c.do(ctx, http.MethodGet, "/products/", nil, &dtos); err != nil {
		return nil, err
	}
	return dto.ToProducts(dtos), nil
}

// CreateProduct da de alta un producto (POST /products/).
// Un SKU duplicado vuelve como *APIError con el detail del servidor.
func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (entity.Product, error) {
	var created dto.ProductDTO
	if err := c.do(ctx, http.MethodPost, "/products/", in, &created); err != nil {
		return entity.Product{}, err
	}
	return created.ToProduct(), nil
}

// UpdateStock ajusta el stock absoluto de un SKU (PUT /products/{sku}/stock).
func (c *Client) UpdateStock(ctx context.Context, sku string, quantity int) error {
	path := fmt.Sprintf("/products/%s/stock", url.PathEscape(sku))
	return c.do(ctx, http.MethodPut, path, dto.StockUpdateRequest{Quantity: quantity}, nil)
}
