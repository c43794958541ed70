package deletion

import (
	"context"
	"fmt"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/stock"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// UseCase orquesta el ciclo de borrado: snapshot → compilar → despachar.
//
// Riesgo documentado: los índices solo valen contra el snapshot leído aquí.
// Si el histórico muta entre el despacho y la ejecución externa, la orden
// queda obsoleta; eso solo es detectable a posteriori re-leyendo el histórico.
// Este core no tiene mecanismo preventivo y no lo simula.
type UseCase struct {
	almacen     ports.LedgerStore
	despachador ports.DeletionDispatcher
	nombre      string
}

// NewUseCase construye el caso de uso.
func NewUseCase(almacen ports.LedgerStore, despachador ports.DeletionDispatcher, nombre string) *UseCase {
	return &UseCase{almacen: almacen, despachador: despachador, nombre: nombre}
}

// RequestDeletion lee el snapshot vigente, valida la selección contra él,
// compila la orden y la despacha. La respuesta solo confirma "aceptada para
// entrega"; la ejecución ocurre fuera de banda.
func (uc *UseCase) RequestDeletion(ctx context.Context, req dto.DeleteOrderRequest) (*entity.DeleteOrder, error) {
	crudas, _, err := uc.almacen.Fetch(ctx, uc.nombre)
	if err != nil {
		return nil, fmt.Errorf("snapshot para borrado: %w", err)
	}
	historico := stock.Aggregate(crudas).Historico

	var orden *entity.DeleteOrder
	if req.Todo {
		orden, err = CompileAll(historico, req.Instruccion)
	} else {
		seleccion := make([]SelectedRow, 0, len(req.Indices))
		for _, i := range req.Indices {
			if i < 0 || i >= len(historico) {
				return nil, domain.ErrIndiceFueraDeRango
			}
			seleccion = append(seleccion, SelectedRow{Indice: i, Fila: historico[i]})
		}
		orden, err = Compile(seleccion, req.Instruccion)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.despachador.Dispatch(ctx, orden); err != nil {
		return nil, fmt.Errorf("despachar orden de borrado: %w", err)
	}
	orden.Estado = entity.OrdenDespachada
	return orden, nil
}
