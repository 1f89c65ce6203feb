package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrBillingNotConfigured = errors.New("configuración de cobro no registrada")
	ErrUnknownCategory      = errors.New("categoría de vehículo desconocida")
	ErrRemoteUnavailable    = errors.New("API remota no disponible")
)
