package githubstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// Verificar en tiempo de compilación que OrderDispatcher implementa DeletionDispatcher.
var _ ports.DeletionDispatcher = (*OrderDispatcher)(nil)

// OrderDispatcher entrega órdenes de borrado dejándolas como archivos JSON en
// el mismo repositorio del histórico. Un proceso externo las recoge y
// materializa el borrado fuera de banda; escribir el archivo solo significa
// "aceptada para entrega".
type OrderDispatcher struct {
	store *Store
	dir   string // directorio de órdenes dentro del repo, ej. "ordenes"
}

// NewOrderDispatcher construye el despachador sobre un Store existente.
func NewOrderDispatcher(store *Store, dir string) *OrderDispatcher {
	if dir == "" {
		dir = "ordenes"
	}
	return &OrderDispatcher{store: store, dir: dir}
}

// Dispatch escribe la orden como archivo nuevo nombrado por su ID. Al ser un
// archivo nuevo no lleva SHA, así que no compite con otros escritores.
func (d *OrderDispatcher) Dispatch(ctx context.Context, orden *entity.DeleteOrder) error {
	if orden == nil {
		return domain.ErrEntradaInvalida
	}

	doc, err := json.MarshalIndent(orden, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar orden: %w", err)
	}

	nombre := fmt.Sprintf("%s/orden-%s.json", d.dir, orden.ID)
	payload := putRequest{
		Message: fmt.Sprintf("orden de borrado %s (%d filas)", orden.ID, orden.Total),
		Content: base64.StdEncoding.EncodeToString(doc),
		Branch:  d.store.cfg.Branch,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, d.store.contentsURL(nombre), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: crear request: %v", domain.ErrAlmacenInaccesible, err)
	}
	d.store.headers(req)

	resp, err := d.store.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAlmacenInaccesible, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: PUT %s HTTP %d", domain.ErrAlmacenInaccesible, nombre, resp.StatusCode)
	}
	return nil
}
