package dto

import "github.com/jhoicas/nexus-pos/internal/domain/entity"

// StaffDTO forma de cable de GET /staff/.
type StaffDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Passcode string `json:"passcode"`
}

// CreateStaffRequest cuerpo de POST /staff/.
type CreateStaffRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Passcode string `json:"passcode"`
}

// SupplierDTO forma de cable de GET /suppliers/.
type SupplierDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

// CreateSupplierRequest cuerpo de POST /suppliers/.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

// ToStaff convierte la forma de cable a entidad.
func (d StaffDTO) ToStaff() entity.Staff {
	return entity.Staff{ID: d.ID, Name: d.Name, Role: d.Role, Passcode: d.Passcode}
}

// ToSupplier convierte la forma de cable a entidad.
func (d SupplierDTO) ToSupplier() entity.Supplier {
	return entity.Supplier{ID: d.ID, Name: d.Name, ContactEmail: d.ContactEmail, Phone: d.Phone}
}
