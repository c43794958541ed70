// Package draft mantiene el borrador de una sesión: la fusión incremental de
// lotes extraídos y el etiquetado de obsolescencia previo a mostrarlo.
package draft

import "github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"

// Merge integra un lote entrante al borrador vigente deduplicando por llave
// de identidad (serial → modelo → equipo). Un ítem entrante con llave ya
// presente REEMPLAZA la fila completa, no fusiona campo a campo: el servicio
// de extracción siempre reenvía el ítem entero.
//
// El orden del resultado es observable y estable: primero las llaves ya
// existentes en su orden original, luego las nuevas en orden de llegada.
// Dentro del borrador vigente, llaves repetidas conservan la última aparición.
func Merge(vigente, entrante []entity.Movement) []entity.Movement {
	orden := make([]string, 0, len(vigente)+len(entrante))
	porLlave := make(map[string]entity.Movement, len(vigente)+len(entrante))

	for _, item := range vigente {
		k := item.IdentityKey()
		if _, visto := porLlave[k]; !visto {
			orden = append(orden, k)
		}
		porLlave[k] = item
	}
	for _, item := range entrante {
		k := item.IdentityKey()
		if _, visto := porLlave[k]; !visto {
			orden = append(orden, k)
		}
		porLlave[k] = item
	}

	resultado := make([]entity.Movement, 0, len(orden))
	for _, k := range orden {
		resultado = append(resultado, porLlave[k])
	}
	return resultado
}
