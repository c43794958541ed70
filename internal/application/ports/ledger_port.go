package ports

import (
	"context"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// LedgerStore puerto hacia el almacén del histórico (un único documento JSON
// mutable hospedado fuera del proceso). No hay transacciones ni locking: el
// único control es el token de conflicto opaco que devuelve Fetch.
//
// Contrato de errores:
//   - Un documento inexistente NO es error: Fetch devuelve filas vacías.
//   - Cualquier otro fallo de lectura devuelve domain.ErrAlmacenInaccesible
//     (envuelto); el caller jamás debe confundirlo con "histórico vacío".
//   - Una escritura que pierde la carrera devuelve domain.ErrConflictoAlmacen;
//     el caller decide si re-lee y reintenta.
type LedgerStore interface {
	// Fetch lee el snapshot completo. Las filas vienen crudas (elementos JSON
	// decodificados): la validación de forma es del normalizador, no del
	// almacén. El token identifica la versión leída.
	Fetch(ctx context.Context, nombre string) (filas []any, token string, err error)

	// Append agrega filas al final del documento.
	Append(ctx context.Context, nombre string, filas []entity.Movement, mensaje string) error

	// Replace sustituye el documento completo.
	Replace(ctx context.Context, nombre string, filas []entity.Movement, mensaje string) error
}

// DeletionDispatcher puerto hacia el procesador de borrados. El despacho es
// una solicitud asíncrona: "aceptada para entrega" y "ejecutada" son estados
// distintos y este core solo conoce el primero.
type DeletionDispatcher interface {
	Dispatch(ctx context.Context, orden *entity.DeleteOrder) error
}

// AssetLookup puerto hacia el sistema de tickets (GLPI) para enriquecer el
// contexto de auditoría. Nunca es autoritativo para el estado del stock.
type AssetLookup interface {
	// FindBySerial reporta si existe un activo con ese serial.
	FindBySerial(ctx context.Context, serial string) (bool, error)
}
