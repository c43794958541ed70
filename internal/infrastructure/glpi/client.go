// Package glpi consulta el sistema de tickets (GLPI) para verificar si un
// serial corresponde a un activo registrado. La respuesta solo enriquece el
// contexto de auditoría del chat; nunca es autoritativa para el stock.
package glpi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
)

// Verificar en tiempo de compilación que Client implementa AssetLookup.
var _ ports.AssetLookup = (*Client)(nil)

// Config acceso a la API REST de GLPI.
type Config struct {
	BaseURL   string // ej. https://glpi.empresa.com/apirest.php
	AppToken  string
	UserToken string
}

// Client adaptador REST de GLPI. Cada consulta abre y cierra su propia sesión
// (init_session/kill_session): el volumen de búsquedas es bajo y así no hay
// tokens de sesión que caduquen en memoria.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient construye el adaptador.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type initSessionResponse struct {
	SessionToken string `json:"session_token"`
}

type searchResponse struct {
	TotalCount int `json:"totalcount"`
}

// FindBySerial reporta si existe un computador con ese serial en GLPI.
func (c *Client) FindBySerial(ctx context.Context, serial string) (bool, error) {
	if c.cfg.BaseURL == "" {
		return false, fmt.Errorf("GLPI: no configurado")
	}
	if serial == "" {
		return false, nil
	}

	token, err := c.initSession(ctx)
	if err != nil {
		return false, err
	}
	defer c.killSession(token)

	// Búsqueda por el campo serial (criterio 5 del esquema de Computer).
	q := url.Values{}
	q.Set("criteria[0][field]", "5")
	q.Set("criteria[0][searchtype]", "equals")
	q.Set("criteria[0][value]", serial)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/search/Computer?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("GLPI: crear request: %w", err)
	}
	c.headers(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("GLPI: búsqueda fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return false, fmt.Errorf("GLPI: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return false, fmt.Errorf("GLPI: búsqueda HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return false, fmt.Errorf("GLPI: respuesta ilegible: %w", err)
	}
	return sr.TotalCount > 0, nil
}

func (c *Client) initSession(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/initSession", nil)
	if err != nil {
		return "", fmt.Errorf("GLPI: crear request: %w", err)
	}
	req.Header.Set("App-Token", c.cfg.AppToken)
	req.Header.Set("Authorization", "user_token "+c.cfg.UserToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GLPI: iniciar sesión: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GLPI: iniciar sesión HTTP %d", resp.StatusCode)
	}
	var ir initSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return "", fmt.Errorf("GLPI: token de sesión ilegible: %w", err)
	}
	return ir.SessionToken, nil
}

// killSession cierra la sesión en segundo plano; un fallo aquí no afecta la
// consulta ya resuelta.
func (c *Client) killSession(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/killSession", nil)
	if err != nil {
		return
	}
	c.headers(req, token)
	if resp, err := c.httpClient.Do(req); err == nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

func (c *Client) headers(req *http.Request, sessionToken string) {
	req.Header.Set("App-Token", c.cfg.AppToken)
	req.Header.Set("Session-Token", sessionToken)
}
