package inventory

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// StockPatch es una actualización parcial de cubetas; nil = sin cambio.
type StockPatch struct {
	Actual    *int64
	Reservado *int64
	Transito  *int64
	RMA       *int64
}

// ApplyPatch mezcla el patch sobre el registro. Rechaza cualquier valor
// negativo acumulando todas las violaciones; si hay alguna, el registro no se
// toca (nunca se aplica a medias). La consistencia de disponible (sobre-venta)
// es advisory y no se valida aquí.
func ApplyPatch(rec *entity.StockRecord, patch StockPatch, now time.Time) error {
	verr := domain.NewValidationError()
	if patch.Actual != nil && *patch.Actual < 0 {
		verr.Add("actual", "no puede ser negativo")
	}
	if patch.Reservado != nil && *patch.Reservado < 0 {
		verr.Add("reservado", "no puede ser negativo")
	}
	if patch.Transito != nil && *patch.Transito < 0 {
		verr.Add("transito", "no puede ser negativo")
	}
	if patch.RMA != nil && *patch.RMA < 0 {
		verr.Add("rma", "no puede ser negativo")
	}
	if verr.HasViolations() {
		return verr
	}

	if patch.Actual != nil {
		rec.Actual = *patch.Actual
	}
	if patch.Reservado != nil {
		rec.Reservado = *patch.Reservado
	}
	if patch.Transito != nil {
		rec.Transito = *patch.Transito
	}
	if patch.RMA != nil {
		rec.RMA = *patch.RMA
	}
	rec.UpdatedAt = now
	return nil
}

// IsEmpty indica si el patch no trae ningún campo.
func (p StockPatch) IsEmpty() bool {
	return p.Actual == nil && p.Reservado == nil && p.Transito == nil && p.RMA == nil
}
