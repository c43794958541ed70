package dto

// DeleteOrderRequest selección de filas a borrar. Todo=true construye
// explícitamente la orden sobre el rango completo del snapshot; una lista de
// índices vacía NUNCA se interpreta como "borrar todo".
type DeleteOrderRequest struct {
	Indices     []int  `json:"indices"`
	Todo        bool   `json:"todo"`
	Instruccion string `json:"instruccion"`
}

// DeleteOrderResponse confirma que la orden fue despachada al procesador
// externo. Despachada no significa ejecutada: el estado real solo se conoce
// re-leyendo el histórico en un refresh posterior.
type DeleteOrderResponse struct {
	OrderID string `json:"order_id"`
	Estado  string `json:"estado"`
	Total   int    `json:"total"`
}
