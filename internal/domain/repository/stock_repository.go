package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar el stock por
// producto+almacén. El registro se crea implícitamente en la primera escritura
// (Get devuelve cubetas en cero si la fila no existe, nunca nil).
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.StockRecord, error)
	Upsert(record *entity.StockRecord) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar el
	// read-modify-write por clave dentro de una transacción.
	GetForUpdate(productID, warehouseID string) (*entity.StockRecord, error)
}
