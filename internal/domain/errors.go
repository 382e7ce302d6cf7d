package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// Variantes de ErrNotFound: errors.Is(ErrProductNotFound, ErrNotFound) es true.
	ErrProductNotFound  = fmt.Errorf("producto: %w", ErrNotFound)
	ErrSupplierNotFound = fmt.Errorf("proveedor: %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("orden de compra: %w", ErrNotFound)

	// Ciclo de vida de órdenes de compra.
	ErrAlreadyReceived   = fmt.Errorf("la orden ya fue recibida: %w", ErrConflict)
	ErrInvalidTransition = errors.New("transición de estado no permitida")

	// Persistencia del documento.
	ErrStoreUnavailable = errors.New("almacenamiento no disponible")
	ErrStoreCorrupt     = errors.New("documento almacenado corrupto")
)
