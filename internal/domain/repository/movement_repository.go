package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos entre
// almacenes (cabecera + líneas). Se usa dentro de transacciones: las
// transiciones de estatus bloquean la cabecera para serializarse entre sí.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// GetForUpdate bloquea la cabecera del movimiento (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Movement, error)
	UpdateStatus(movement *entity.Movement) error
	// ReplaceItems sustituye las líneas completas (solo permitido en Pendiente;
	// la regla la aplica el caso de uso, no el repositorio).
	ReplaceItems(movement *entity.Movement) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error)
	// NextSerial consume la secuencia de folios y devuelve el siguiente número.
	NextSerial() (int64, error)
}
