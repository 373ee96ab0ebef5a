package inventory

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	domaininv "github.com/tu-usuario/almacen-pro/internal/domain/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TransitionMovementUseCase aplica cambios de estatus a un movimiento con sus
// efectos de stock, todo dentro de una transacción con la cabecera del
// movimiento y las filas de stock bloqueadas (SELECT FOR UPDATE).
//
// Orden estricto: primero se verifica la legalidad de la transición y la
// suficiencia de stock de TODAS las líneas; solo después se muta. Una
// transición ilegal nunca toca stock.
type TransitionMovementUseCase struct {
	txRunner TxRunner
}

// NewTransitionMovementUseCase construye el caso de uso.
func NewTransitionMovementUseCase(txRunner TxRunner) *TransitionMovementUseCase {
	return &TransitionMovementUseCase{txRunner: txRunner}
}

// Transition cambia el estatus del movimiento movementID a estatus, aplicando
// los efectos de stock de la transición. La autorización del actor es
// responsabilidad del caller (middleware RBAC); aquí solo se aplican las
// reglas de orden del ciclo de vida.
func (uc *TransitionMovementUseCase) Transition(ctx context.Context, companyID, movementID, estatus, notas string) (*entity.Movement, error) {
	if !domaininv.IsValidStatus(estatus) {
		verr := domain.NewValidationError()
		verr.Add("estatus", "estatus desconocido: "+estatus)
		return nil, verr
	}

	var result *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea la cabecera: dos transiciones concurrentes sobre el mismo
		// movimiento se serializan aquí.
		movement, err := movRepo.GetForUpdate(movementID)
		if err != nil {
			return err
		}
		if movement == nil || movement.CompanyID != companyID {
			return domain.ErrNotFound
		}

		if !domaininv.IsLegalTransition(movement.Status, estatus) {
			return &domain.IllegalTransitionError{From: movement.Status, To: estatus}
		}

		if err := applyStockEffects(stockRepo, movement, estatus); err != nil {
			return err
		}

		movement.Status = estatus
		if notas != "" {
			movement.Notas = notas
		}
		if err := movRepo.UpdateStatus(movement); err != nil {
			return err
		}
		result = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyStockEffects ejecuta los deltas de stock de la transición:
//
//	Pendiente -> Aprobado     sin efecto (solo autorización)
//	Aprobado  -> Transito     origen.actual -= cantidad; destino.transito += cantidad
//	Transito  -> Recibido     destino.transito -= cantidad; destino.actual += cantidad
//	cualquiera -> Anulado     revierte lo aplicado según el estatus que se abandona
//	Anulado   -> Pendiente    sin efecto (el stock ya fue restituido al anular)
//
// La cantidad total se conserva entre origen y destino en todo momento.
func applyStockEffects(stockRepo repository.StockRepository, movement *entity.Movement, to string) error {
	from := movement.Status
	switch {
	case from == entity.StatusAprobado && to == entity.StatusTransito:
		return dispatch(stockRepo, movement)
	case from == entity.StatusTransito && to == entity.StatusRecibido:
		return receive(stockRepo, movement)
	case to == entity.StatusAnulado:
		return cancel(stockRepo, movement, from)
	}
	return nil
}

// totalsByProduct suma las cantidades por producto, preservando el orden de
// primera aparición para que el orden de bloqueo de filas sea estable. Varias
// líneas del mismo producto se aplican como un solo delta: leer cada línea por
// separado dejaría snapshots desfasados y el último Upsert pisaría al primero.
func totalsByProduct(items []entity.MovementItem) ([]string, map[string]int64) {
	order := make([]string, 0, len(items))
	totals := make(map[string]int64, len(items))
	for _, item := range items {
		if _, ok := totals[item.ProductID]; !ok {
			order = append(order, item.ProductID)
		}
		totals[item.ProductID] += item.Cantidad
	}
	return order, totals
}

// dispatch saca la mercancía del origen y la pone en tránsito hacia el
// destino. Verifica suficiencia del total por producto antes de mutar nada.
func dispatch(stockRepo repository.StockRepository, movement *entity.Movement) error {
	products, totals := totalsByProduct(movement.Items)
	origins := make(map[string]*entity.StockRecord, len(products))
	dests := make(map[string]*entity.StockRecord, len(products))
	for _, productID := range products {
		origin, err := stockRepo.GetForUpdate(productID, movement.OriginID)
		if err != nil {
			return err
		}
		if origin.Actual < totals[productID] {
			return domain.ErrInsufficientStock
		}
		dest, err := stockRepo.GetForUpdate(productID, movement.DestinationID)
		if err != nil {
			return err
		}
		origins[productID], dests[productID] = origin, dest
	}
	for _, productID := range products {
		origins[productID].Actual -= totals[productID]
		dests[productID].Transito += totals[productID]
		if err := stockRepo.Upsert(origins[productID]); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dests[productID]); err != nil {
			return err
		}
	}
	return nil
}

// receive convierte el tránsito entrante del destino en existencia en mano.
func receive(stockRepo repository.StockRepository, movement *entity.Movement) error {
	products, totals := totalsByProduct(movement.Items)
	for _, productID := range products {
		dest, err := stockRepo.GetForUpdate(productID, movement.DestinationID)
		if err != nil {
			return err
		}
		dest.Transito -= totals[productID]
		dest.Actual += totals[productID]
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}
	}
	return nil
}

// cancel revierte los deltas ya aplicados según el estatus que se abandona.
// Desde Pendiente/Aprobado no hay nada que revertir; desde Anulado tampoco
// (re-anular es un no-op, lo que hace la cancelación idempotente).
func cancel(stockRepo repository.StockRepository, movement *entity.Movement, from string) error {
	if from != entity.StatusTransito && from != entity.StatusRecibido {
		return nil
	}
	products, totals := totalsByProduct(movement.Items)
	for _, productID := range products {
		origin, err := stockRepo.GetForUpdate(productID, movement.OriginID)
		if err != nil {
			return err
		}
		dest, err := stockRepo.GetForUpdate(productID, movement.DestinationID)
		if err != nil {
			return err
		}
		origin.Actual += totals[productID]
		if from == entity.StatusTransito {
			dest.Transito -= totals[productID]
		} else {
			dest.Actual -= totals[productID]
		}
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}
	}
	return nil
}
