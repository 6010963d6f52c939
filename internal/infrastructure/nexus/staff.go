package nexus

import (
	"context"
	"net/http"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
)

// ListStaff lista el personal registrado (GET /staff/).
func (c *Client) ListStaff(ctx context.Context) ([]entity.Staff, error) {
	var dtos []dto.StaffDTO
	if err := c.do(ctx, http.MethodGet, "/staff/", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]entity.Staff, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ToStaff())
	}
	return out, nil
}

// CreateStaff agrega un miembro del personal (POST /staff/).
func (c *Client) CreateStaff(ctx context.Context, in dto.CreateStaffRequest) (entity.Staff, error) {
	var created dto.StaffDTO
	if err := c.do(ctx, http.MethodPost, "/staff/", in, &created); err != nil {
		return entity.Staff{}, err
	}
	return created.ToStaff(), nil
}

// ListSuppliers lista los proveedores (GET /suppliers/).
func (c *Client) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	var dtos []dto.SupplierDTO
	if err := c.do(ctx, http.MethodGet, "/suppliers/", nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]entity.Supplier, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.ToSupplier())
	}
	return out, nil
}

// CreateSupplier agrega un proveedor (POST /suppliers/).
func (c *Client) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (entity.Supplier, error) {
	var created dto.SupplierDTO
	if err := c.do(ctx, http.MethodPost, "/suppliers/", in, &created); err != nil {
		return entity.Supplier{}, err
	}
	return created.ToSupplier(), nil
}
