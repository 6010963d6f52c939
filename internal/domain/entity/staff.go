package entity

// Staff miembro del personal de la tienda (CRUD simple contra el backend).
type Staff struct {
	ID       int
	Name     string
	Role     string // rol descriptivo ("Cashier", "Manager"), no confundir con Role de sesión
	Passcode string
}

// Supplier proveedor registrado (CRUD simple contra el backend).
type Supplier struct {
	ID           int
	Name         string
	ContactEmail string
	Phone        string
}
