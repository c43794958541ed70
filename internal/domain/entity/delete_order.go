package entity

import "time"

// Estados de una orden de borrado. La orden es una solicitud: "despachada"
// significa aceptada para entrega, no ejecutada. El procesador externo la
// materializa fuera de banda; la única verificación posible es re-leer el
// histórico y comparar.
const (
	OrdenPendiente  = "pendiente"
	OrdenDespachada = "despachada"
)

// DeleteMatch resumen compacto de una fila seleccionada, incluido en la orden
// para auditoría del procesador externo.
type DeleteMatch struct {
	Indice        int    `json:"indice"`
	Serial        string `json:"serial"`
	Guia          string `json:"guia"`
	FechaRegistro string `json:"fecha_registro"`
	Equipo        string `json:"equipo"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Origen        string `json:"origen"`
	Destino       string `json:"destino"`
	Tipo          string `json:"tipo"`
	Estado        string `json:"estado"`
}

// DeleteOrder orden estructurada de borrado sobre un snapshot del histórico.
// Los índices solo son válidos contra el snapshot exacto del que se calcularon;
// si el histórico muta entre la selección y la ejecución, quedan obsoletos.
type DeleteOrder struct {
	ID            string        `json:"id"`
	Instruccion   string        `json:"instruccion"` // texto libre del usuario que motivó la selección
	Total         int           `json:"total"`
	Indices       []int         `json:"indices"`
	Coincidencias []DeleteMatch `json:"coincidencias"`
	Estado        string        `json:"estado"`
	CreadaEn      time.Time     `json:"creada_en"`
}
