package documents

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// Generator produce los documentos PDF del sistema. Para el caller es una
// caja negra: consume la entidad ya resuelta y devuelve los bytes del PDF.
type Generator interface {
	GenerateMovementPDF(
		ctx context.Context,
		movement *entity.Movement,
		origin, destination *entity.Warehouse,
		products map[string]*entity.Product,
	) ([]byte, error)
	GenerateOrderPDF(
		ctx context.Context,
		order *entity.Order,
		branch *entity.Branch,
	) ([]byte, error)
}
