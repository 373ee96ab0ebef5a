package entity

import "time"

// StockRecord representa las existencias de un producto en un almacén,
// separadas en cubetas: actual (en mano), reservado (apartado),
// transito (en camino hacia el almacén) y rma (devoluciones).
// Las cantidades son unidades enteras; ninguna cubeta admite negativos.
type StockRecord struct {
	ProductID   string
	WarehouseID string
	Actual      int64
	Reservado   int64
	Transito    int64
	RMA         int64
	UpdatedAt   time.Time
}

// Disponible devuelve la cantidad ordenable: actual + transito - reservado.
// No se recorta a cero: un resultado negativo significa sobre-reserva y el
// caller debe mostrarlo tal cual, no silenciarlo.
func (s *StockRecord) Disponible() int64 {
	return s.Actual + s.Transito - s.Reservado
}
