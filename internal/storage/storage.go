package storage

import (
	"errors"
	"fmt"
)

var (
	ErrCorteNotFound     = errors.New("el corte no fue encontrado")
	ErrSinCortes         = errors.New("no hay cortes registrados")
	ErrCorteEntregado    = errors.New("el corte ya fue entregado")
	ErrTallaInvalida     = errors.New("la talla no pertenece a la lista de tallas")
	ErrSinTallas         = errors.New("el corte no tiene tallas declaradas")
	ErrCupoNoDeclarado   = errors.New("no hay cupo declarado para esa talla")
	ErrCantidadInvalida  = errors.New("la cantidad debe ser mayor que cero")
	ErrNumeroBandoUsado  = errors.New("el número de bando ya está usado en este corte")
	ErrBandosInvalidos   = errors.New("los bandos no pertenecen al corte o mezclan tallas")
	ErrOperacionNotFound = errors.New("la operación no fue encontrada")
	ErrSinOperaciones    = errors.New("no hay operaciones registradas")
	ErrPrecioInvalido    = errors.New("los precios no pueden ser negativos")
	ErrTareaNotFound     = errors.New("la tarea no fue encontrada")
	ErrEmpleadoNotFound  = errors.New("el empleado no fue encontrado")
	ErrEntradaAbierta    = errors.New("el empleado ya tiene una entrada abierta hoy")
	ErrSinEntradaAbierta = errors.New("el empleado no tiene una entrada abierta hoy")
)

// CupoExcedidoError se devuelve cuando un bando pasaría el cupo de su talla.
// Lleva lo pedido, el tope y lo ya producido para que la UI pueda decir
// "solo caben N más".
type CupoExcedidoError struct {
	Corte      int64
	Talla      int
	Solicitado int
	Maximo     int
	Actual     int
}

func (e *CupoExcedidoError) Error() string {
	return fmt.Sprintf("cupo excedido para corte %d talla %d: pedido %d, máximo %d, producido %d",
		e.Corte, e.Talla, e.Solicitado, e.Maximo, e.Actual)
}
