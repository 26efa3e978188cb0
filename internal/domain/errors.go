package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrNoTemplates        = errors.New("no hay plantillas de bodega configuradas")
	ErrNoWarehouseContext = errors.New("la regla requiere un contexto de bodega resuelto")
	ErrUnknownRuleType    = errors.New("tipo de regla no soportado")
	ErrEmptySnapshot      = errors.New("el snapshot de inventario está vacío")
)
