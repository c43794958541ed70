package draft

import (
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/generation"
)

// ApplyObsolescence etiqueta los ítems con procesador obsoleto: fuerza el
// estado y el destino a chatarrización y, si el origen está vacío, lo asume
// bodega. Los ítems modernos no se tocan. La operación es idempotente y muta
// el slice recibido; el caller debe tratar el retorno como la verdad.
func ApplyObsolescence(items []entity.Movement) []entity.Movement {
	for i := range items {
		if generation.Classify(items[i].Procesador) != generation.Obsoleto {
			continue
		}
		items[i].Estado = entity.EstadoChatarrizacion
		items[i].Destino = entity.DestinoChatarrizacion
		if items[i].Origen == "" {
			items[i].Origen = entity.OrigenBodega
		}
	}
	return items
}
