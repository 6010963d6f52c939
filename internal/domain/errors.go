package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateSKU       = errors.New("el SKU ya está registrado")
	ErrUnauthorized       = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrBackendUnreachable = errors.New("no se pudo contactar al servidor")
	ErrInvalidStep        = errors.New("paso de configuración fuera de orden")
)
