package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

func TestDisponible_SumaActualYTransitoMenosReservado(t *testing.T) {
	s := entity.StockRecord{Actual: 10, Transito: 3, Reservado: 4, RMA: 2}
	assert.Equal(t, int64(9), s.Disponible(), "rma no participa en el disponible")
}

func TestDisponible_PuedeSerNegativo(t *testing.T) {
	// Sobre-reserva: el formulario la permite y el disponible se reporta tal cual.
	s := entity.StockRecord{Actual: 2, Transito: 0, Reservado: 5}
	assert.Equal(t, int64(-3), s.Disponible())
}

func TestDisponible_RegistroVacio(t *testing.T) {
	var s entity.StockRecord
	assert.Equal(t, int64(0), s.Disponible())
}
