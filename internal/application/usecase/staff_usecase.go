package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/nexus-pos/internal/application/dto"
	"github.com/jhoicas/nexus-pos/internal/domain"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/pkg/logger"
)

// StaffAPI puerto hacia los endpoints de personal y proveedores.
type StaffAPI interface {
	ListStaff(ctx context.Context) ([]entity.Staff, error)
	CreateStaff(ctx context.Context, in dto.CreateStaffRequest) (entity.Staff, error)
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
	CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (entity.Supplier, error)
}

// StaffUseCase gestión de personal y proveedores de la tienda.
type StaffUseCase struct {
	api StaffAPI
	log *logger.Logger
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(api StaffAPI, log *logger.Logger) *StaffUseCase {
	return &StaffUseCase{api: api, log: log}
}

// ListStaff lista el personal registrado.
func (uc *StaffUseCase) ListStaff(ctx context.Context) ([]entity.Staff, error) {
	return uc.api.ListStaff(ctx)
}

// AddStaff registra un miembro del personal. Nombre y rol son obligatorios;
// el passcode, si viene, debe ser numérico de 4 dígitos.
func (uc *StaffUseCase) AddStaff(ctx context.Context, in dto.CreateStaffRequest) (entity.Staff, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	if in.Name == "" || in.Role == "" {
		return entity.Staff{}, domain.ErrInvalidInput
	}
	if in.Passcode != "" && !esPasscodeValido(in.Passcode) {
		return entity.Staff{}, domain.ErrInvalidInput
	}

	created, err := uc.api.CreateStaff(ctx, in)
	if err != nil {
		return entity.Staff{}, err
	}
	uc.log.Info().Str("name", created.Name).Str("role", created.Role).Msg("personal registrado")
	return created, nil
}

// ListSuppliers lista los proveedores registrados.
func (uc *StaffUseCase) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return uc.api.ListSuppliers(ctx)
}

// AddSupplier registra un proveedor. El nombre es obligatorio y el email de
// contacto, si viene, debe tener forma de correo.
func (uc *StaffUseCase) AddSupplier(ctx context.Context, in dto.CreateSupplierRequest) (entity.Supplier, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	if in.Name == "" {
		return entity.Supplier{}, domain.ErrInvalidInput
	}
	if in.ContactEmail != "" && !strings.Contains(in.ContactEmail, "@") {
		return entity.Supplier{}, domain.ErrInvalidInput
	}

	created, err := uc.api.CreateSupplier(ctx, in)
	if err != nil {
		return entity.Supplier{}, err
	}
	uc.log.Info().Str("name", created.Name).Msg("proveedor registrado")
	return created, nil
}

func esPasscodeValido(p string) bool {
	if len(p) != 4 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
