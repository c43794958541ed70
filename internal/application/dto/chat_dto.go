package dto

import (
	"encoding/json"
	"strings"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// Estados del resultado de extracción.
const (
	StatusReady    = "READY"    // el borrador está completo y listo para confirmar
	StatusQuestion = "QUESTION" // el asistente necesita más datos del usuario
	StatusIdle     = "IDLE"     // el turno no aporta ítems (charla, saludo)
)

// ChatMessage un turno de la conversación.
type ChatMessage struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// ChatRequest entrada del endpoint de chat.
type ChatRequest struct {
	SessionID string `json:"session_id"` // vacío = crear sesión nueva
	Message   string `json:"message"`
}

// ChatResponse respuesta de un turno: explicación del asistente más el
// snapshot del borrador ya fusionado y etiquetado.
type ChatResponse struct {
	SessionID   string            `json:"session_id"`
	Status      string            `json:"status"`
	Explanation string            `json:"explanation"`
	Draft       []entity.Movement `json:"draft"`
	Rechazados  int               `json:"rechazados,omitempty"` // ítems crudos descartados del lote
}

// ExtractionResult resultado estructurado del servicio de extracción. Todos
// los campos son opcionales en el JSON del modelo; ver ParseExtractionResult.
type ExtractionResult struct {
	Status      string `json:"status"`
	Items       []any  `json:"items"`
	Explanation string `json:"explicacion"`
}

// ParseExtractionResult decodifica la salida del modelo con tolerancia total:
// JSON ausente, malformado o sin campos colapsa a "sin ítems, QUESTION".
// Nunca retorna error; un fallo del modelo jamás es fatal para el usuario.
func ParseExtractionResult(raw []byte) *ExtractionResult {
	res := &ExtractionResult{}
	texto := strings.TrimSpace(string(raw))

	// Algunos modelos envuelven el JSON en fences de markdown pese al prompt.
	texto = strings.TrimPrefix(texto, "```json")
	texto = strings.TrimPrefix(texto, "```")
	texto = strings.TrimSuffix(texto, "```")

	if err := json.Unmarshal([]byte(strings.TrimSpace(texto)), res); err != nil {
		return &ExtractionResult{Status: StatusQuestion, Explanation: ""}
	}
	switch res.Status {
	case StatusReady, StatusQuestion, StatusIdle:
	default:
		res.Status = StatusQuestion
	}
	return res
}
