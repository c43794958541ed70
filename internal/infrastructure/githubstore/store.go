// Package githubstore persiste el histórico como un único documento JSON en
// un repositorio de GitHub, vía la Contents API. No hay transacciones: el SHA
// del blob actúa como token de conflicto optimista (compare-and-swap simple).
package githubstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// Verificar en tiempo de compilación que Store implementa LedgerStore.
var _ ports.LedgerStore = (*Store)(nil)

const apiBase = "https://api.github.com"

// Config acceso al repositorio del histórico.
type Config struct {
	Owner  string
	Repo   string
	Branch string
	Token  string

	// BaseURL permite apuntar a un servidor de prueba; vacío = api.github.com.
	BaseURL string
}

// Store adaptador de almacén sobre la GitHub Contents API.
type Store struct {
	cfg        Config
	httpClient *http.Client
}

// NewStore construye el adaptador.
func NewStore(cfg Config) *Store {
	if cfg.BaseURL == "" {
		cfg.BaseURL = apiBase
	}
	return &Store{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras del protocolo Contents API ────────────────────────────────────

type contentsResponse struct {
	Content  string `json:"content"`  // base64 del documento
	Encoding string `json:"encoding"` // "base64"
	SHA      string `json:"sha"`
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"` // base64
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Fetch lee el documento completo. Un 404 significa histórico vacío (filas
// nil, token vacío, sin error); cualquier otro fallo envuelve
// domain.ErrAlmacenInaccesible para que el caller jamás lo confunda con un
// histórico vacío. El SHA del blob es el token de conflicto.
func (s *Store) Fetch(ctx context.Context, nombre string) ([]any, string, error) {
	doc, sha, err := s.fetchRaw(ctx, nombre)
	if err != nil {
		return nil, "", err
	}
	if doc == nil {
		return nil, "", nil
	}

	var filas []any
	if err := json.Unmarshal(doc, &filas); err != nil {
		return nil, "", fmt.Errorf("%w: documento %q no es un arreglo JSON: %v",
			domain.ErrAlmacenInaccesible, nombre, err)
	}
	return filas, sha, nil
}

// Append lee el documento vigente, agrega las filas al final y escribe con el
// SHA leído. Si otro escritor ganó la carrera entre la lectura y el PUT, el
// almacén responde conflicto y se devuelve domain.ErrConflictoAlmacen.
func (s *Store) Append(ctx context.Context, nombre string, filas []entity.Movement, mensaje string) error {
	vigentes, sha, err := s.Fetch(ctx, nombre)
	if err != nil {
		return err
	}
	for _, f := range filas {
		vigentes = append(vigentes, f)
	}
	return s.put(ctx, nombre, vigentes, sha, mensaje)
}

// Replace sustituye el documento completo, también bajo el SHA vigente.
func (s *Store) Replace(ctx context.Context, nombre string, filas []entity.Movement, mensaje string) error {
	_, sha, err := s.Fetch(ctx, nombre)
	if err != nil {
		return err
	}
	contenido := make([]any, 0, len(filas))
	for _, f := range filas {
		contenido = append(contenido, f)
	}
	return s.put(ctx, nombre, contenido, sha, mensaje)
}

// ── Helpers HTTP ──────────────────────────────────────────────────────────────

func (s *Store) contentsURL(nombre string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", s.cfg.BaseURL, s.cfg.Owner, s.cfg.Repo, nombre)
}

// fetchRaw devuelve el documento decodificado y su SHA; (nil, "", nil) si no existe.
func (s *Store) fetchRaw(ctx context.Context, nombre string) ([]byte, string, error) {
	url := s.contentsURL(nombre)
	if s.cfg.Branch != "" {
		url += "?ref=" + s.cfg.Branch
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: crear request: %v", domain.ErrAlmacenInaccesible, err)
	}
	s.headers(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrAlmacenInaccesible, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: GET %s HTTP %d", domain.ErrAlmacenInaccesible, nombre, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, "", fmt.Errorf("%w: leer cuerpo: %v", domain.ErrAlmacenInaccesible, err)
	}

	var contents contentsResponse
	if err := json.Unmarshal(body, &contents); err != nil {
		return nil, "", fmt.Errorf("%w: respuesta ilegible: %v", domain.ErrAlmacenInaccesible, err)
	}

	doc, err := base64.StdEncoding.DecodeString(limpiarBase64(contents.Content))
	if err != nil {
		return nil, "", fmt.Errorf("%w: decodificar contenido: %v", domain.ErrAlmacenInaccesible, err)
	}
	return doc, contents.SHA, nil
}

func (s *Store) put(ctx context.Context, nombre string, contenido []any, sha, mensaje string) error {
	doc, err := json.MarshalIndent(contenido, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}

	payload := putRequest{
		Message: mensaje,
		Content: base64.StdEncoding.EncodeToString(doc),
		SHA:     sha,
		Branch:  s.cfg.Branch,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.contentsURL(nombre), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: crear request: %v", domain.ErrAlmacenInaccesible, err)
	}
	s.headers(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAlmacenInaccesible, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		return nil
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		// SHA desactualizado: alguien escribió entre nuestra lectura y el PUT.
		return fmt.Errorf("%w: PUT %s HTTP %d", domain.ErrConflictoAlmacen, nombre, resp.StatusCode)
	default:
		return fmt.Errorf("%w: PUT %s HTTP %d", domain.ErrAlmacenInaccesible, nombre, resp.StatusCode)
	}
}

func (s *Store) headers(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	}
}

// limpiarBase64 quita los saltos de línea con que GitHub trocea el contenido.
func limpiarBase64(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
