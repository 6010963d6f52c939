// Package usecase reúne las operaciones de gestión que la terminal expone en
// las vistas administrativas: alta de productos, ajustes de stock, personal,
// proveedores y reportes de ventas. Todas delegan la regla de negocio en el
// backend y mantienen el catálogo local sincronizado tras cada escritura.
package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/domain"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// ProductAPI puerto hacia los endpoints de escritura de productos.
type ProductAPI interface {
	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (entity.Product, error)
	UpdateStock(ctx context.Context, sku string, quantity int) error
}

// CatalogRefresher re-descarga el catálogo local tras una escritura.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// ProductUseCase alta de productos y ajustes de stock.
type ProductUseCase struct {
	api     ProductAPI
	catalog CatalogRefresher
	log     *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(api ProductAPI, catalog CatalogRefresher, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{api: api, catalog: catalog, log: log}
}

// Add registra un producto nuevo. SKU y nombre son obligatorios, el precio de
// venta debe ser positivo y el stock inicial no negativo. Un SKU duplicado lo
// rechaza el backend; el detail llega tal cual al llamador.
func (uc *ProductUseCase) Add(ctx context.Context, in dto.CreateProductRequest) (entity.Product, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	if in.SKU == "" || in.Name == "" {
		return entity.Product{}, domain.ErrInvalidInput
	}
	if in.SellingPrice.LessThanOrEqual(decimal.Zero) || in.CostPrice.IsNegative() {
		return entity.Product{}, domain.ErrInvalidInput
	}
	if in.StockQuantity < 0 {
		return entity.Product{}, domain.ErrInvalidInput
	}

	created, err := uc.api.CreateProduct(ctx, in)
	if err != nil {
		return entity.Product{}, err
	}
	uc.log.Info().Str("sku", created.SKU).Msg("producto registrado")

	if err := uc.catalog.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("catálogo desactualizado tras el alta")
	}
	return created, nil
}

// AdjustStock fija la cantidad absoluta de stock de un SKU.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, sku string, quantity int) error {
	sku = strings.TrimSpace(sku)
	if sku == "" || quantity < 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.api.UpdateStock(ctx, sku, quantity); err != nil {
		return err
	}
	uc.log.Info().Str("sku", sku).Int("quantity", quantity).Msg("stock ajustado")

	if err := uc.catalog.Refresh(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("catálogo desactualizado tras el ajuste")
	}
	return nil
}
