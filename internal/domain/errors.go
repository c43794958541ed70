package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEntradaInvalida    = errors.New("entrada inválida")
	ErrSesionNoEncontrada = errors.New("sesión no encontrada")
	ErrBorradorVacio      = errors.New("el borrador no tiene ítems para confirmar")
	ErrSeleccionVacia     = errors.New("la selección de filas está vacía")
	ErrIndiceFueraDeRango = errors.New("índice fuera del snapshot del histórico")

	// Un fallo del almacén nunca se confunde con "histórico vacío": el caller
	// recibe una señal explícita y decide si reintenta.
	ErrAlmacenInaccesible = errors.New("almacén del histórico inaccesible")
	ErrConflictoAlmacen   = errors.New("conflicto de escritura en el almacén, reintentar")
)
