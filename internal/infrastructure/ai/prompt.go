package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// systemPrompt define el rol del modelo y el contrato de salida para la
// extracción de movimientos de hardware. El modelo devuelve SOLO un objeto
// JSON; aun así el caller pasa la salida por dto.ParseExtractionResult, que
// tolera fences de markdown y JSON malformado.
const systemPrompt = `Eres el asistente de intake de inventario de soporte técnico.
El usuario describe en lenguaje libre equipos recibidos o enviados. Tu trabajo es
normalizarlos a registros estructurados.

Devuelve ÚNICAMENTE un objeto JSON (sin texto adicional, sin bloques de código) con esta estructura exacta:
{
  "status": "READY" | "QUESTION" | "IDLE",
  "items": [ { "categoria": "...", "tipo": "...", "equipo": "...", "marca": "...", "modelo": "...",
               "serial": "...", "cantidad": <número>, "estado": "...", "procesador": "...",
               "ram": "...", "disco": "...", "observacion": "...", "origen": "...", "destino": "...",
               "pasillo": "...", "estante": "...", "posicion": "...", "guia": "...", "fecha_llegada": "..." } ],
  "explicacion": "<respuesta conversacional en español para el usuario>"
}

Reglas:
- status READY solo cuando cada ítem de cómputo tiene procesador, ram y disco; si falta algo, QUESTION y pregunta por ello en explicacion.
- status IDLE cuando el mensaje no aporta ítems (saludo, charla).
- tipo: vocabulario recibido/enviado (recibido, ingreso, entrada, llegada, enviado, salida, despacho, envío).
- Reenvía SIEMPRE el ítem completo aunque el usuario solo corrija un campo: el borrador reemplaza por fila entera.
- Conserva el serial tal cual lo dicte el usuario; es la llave de deduplicación.
- No inventes datos: campo desconocido = string vacío.`

// buildUserPayload arma el contexto del turno: lecciones, borrador vigente y
// conversación. Va como un único mensaje de usuario para mantener simétricos
// los adaptadores de ambos proveedores.
func buildUserPayload(
	conversacion []dto.ChatMessage,
	lecciones string,
	borrador []entity.Movement,
) string {
	var b strings.Builder

	if lecciones != "" {
		b.WriteString("Lecciones aprendidas de turnos anteriores:\n")
		b.WriteString(lecciones)
		b.WriteString("\n\n")
	}

	if len(borrador) > 0 {
		snapshot, err := json.Marshal(borrador)
		if err == nil {
			b.WriteString("Borrador vigente (reemplaza por llave serial/modelo/equipo):\n")
			b.Write(snapshot)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("Conversación:\n")
	for _, m := range conversacion {
		fmt.Fprintf(&b, "[%s] %s\n", m.Role, m.Content)
	}
	return b.String()
}
