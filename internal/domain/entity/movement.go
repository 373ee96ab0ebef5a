package entity

import "time"

// Estatus del ciclo de vida de un movimiento entre almacenes.
// El nivel numérico (ver inventory.Level) gobierna qué transiciones son legales.
const (
	StatusAnulado   = "Anulado"
	StatusPendiente = "Pendiente"
	StatusAprobado  = "Aprobado"
	StatusTransito  = "Transito"
	StatusRecibido  = "Recibido"
)

// MovementItem es una línea de un movimiento: producto y cantidad solicitada.
type MovementItem struct {
	ProductID string
	Cantidad  int64 // siempre >= 1 tras la validación/clamp de creación
	Notas     string
}

// Movement representa un traslado de mercancía de un almacén origen a uno
// destino, con folio legible (serial) y ciclo de estatus
// Pendiente → Aprobado → Transito → Recibido, con Anulado como escape.
// Referencia productos, almacenes y usuario por id (referencias débiles).
type Movement struct {
	ID            string
	CompanyID     string
	Serial        string // folio legible, ej. MOV-000123
	OriginID      string // almacén origen
	DestinationID string // almacén destino
	Items         []MovementItem
	Notas         string
	Status        string
	ResponsibleID string // UserID que creó el movimiento
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
