// Package session mantiene el estado conversacional por sesión como objetos
// explícitos pasados por handle. Ninguna función del core lee ni escribe
// estado ambiental.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// Session el conjunto de trabajo privado de una conversación: historial,
// borrador en construcción y último estado reportado por la extracción.
type Session struct {
	ID            string
	Historial     []dto.ChatMessage
	Borrador      []entity.Movement
	Estado        string
	CreadaEn      time.Time
	ActualizadaEn time.Time
}

// Store almacén en memoria de sesiones. El mutex protege el mapa y cada
// mutación de sesión pasa por Update, así el caso de uso nunca sostiene
// punteros compartidos mutables.
type Store struct {
	mu       sync.RWMutex
	sesiones map[string]*Session
}

// NewStore construye el almacén vacío.
func NewStore() *Store {
	return &Store{sesiones: make(map[string]*Session)}
}

// GetOrCreate devuelve la sesión indicada, creándola si id es vacío o no
// existe. Retorna una copia; las mutaciones van por Update.
func (st *Store) GetOrCreate(id string) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if s, ok := st.sesiones[id]; ok {
			return copiar(s)
		}
	}
	if id == "" {
		id = uuid.New().String()
	}
	ahora := time.Now()
	s := &Session{ID: id, Estado: dto.StatusIdle, CreadaEn: ahora, ActualizadaEn: ahora}
	st.sesiones[id] = s
	return copiar(s)
}

// Get devuelve una copia de la sesión si existe.
func (st *Store) Get(id string) (Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sesiones[id]
	if !ok {
		return Session{}, false
	}
	return copiar(s), true
}

// Update aplica fn sobre la sesión bajo el lock del almacén. Si la sesión no
// existe, no hace nada y retorna false.
func (st *Store) Update(id string, fn func(*Session)) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sesiones[id]
	if !ok {
		return false
	}
	fn(s)
	s.ActualizadaEn = time.Now()
	return true
}

// Delete elimina la sesión.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sesiones, id)
}

func copiar(s *Session) Session {
	c := *s
	c.Historial = append([]dto.ChatMessage(nil), s.Historial...)
	c.Borrador = append([]entity.Movement(nil), s.Borrador...)
	return c
}
