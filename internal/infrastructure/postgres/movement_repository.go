package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (cabecera en movements, líneas en movement_items). Pasar pool o tx.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, company_id, serial, origin_id, destination_id, notas, status, responsible_id, created_at, updated_at`

// Create persiste la cabecera y todas las líneas del movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, company_id, serial, origin_id, destination_id, notas, status, responsible_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.Serial,
		movement.OriginID, movement.DestinationID, movement.Notas,
		movement.Status, movement.ResponsibleID, movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return r.insertItems(movement)
}

// GetByID obtiene un movimiento con sus líneas; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	return r.scanWithItems(query, id, "get movement")
}

// GetForUpdate obtiene el movimiento bloqueando la cabecera (SELECT FOR
// UPDATE): dos transiciones concurrentes sobre el mismo movimiento se
// serializan en este lock.
func (r *MovementRepo) GetForUpdate(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1 FOR UPDATE`
	return r.scanWithItems(query, id, "get movement for update")
}

// UpdateStatus persiste estatus, notas y updated_at de la cabecera.
func (r *MovementRepo) UpdateStatus(movement *entity.Movement) error {
	query := `UPDATE movements SET status = $2, notas = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, movement.ID, movement.Status, movement.Notas)
	if err != nil {
		return fmt.Errorf("update movement status: %w", err)
	}
	return nil
}

// ReplaceItems sustituye todas las líneas del movimiento.
func (r *MovementRepo) ReplaceItems(movement *entity.Movement) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM movement_items WHERE movement_id = $1`, movement.ID); err != nil {
		return fmt.Errorf("delete movement items: %w", err)
	}
	if err := r.insertItems(movement); err != nil {
		return err
	}
	_, err := r.q.Exec(context.Background(), `UPDATE movements SET updated_at = now() WHERE id = $1`, movement.ID)
	if err != nil {
		return fmt.Errorf("touch movement: %w", err)
	}
	return nil
}

// ListByCompany lista movimientos de la empresa con sus líneas, paginado.
func (r *MovementRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := scanMovement(rows, &m); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, m := range list {
		items, err := r.loadItems(m.ID)
		if err != nil {
			return nil, err
		}
		m.Items = items
	}
	return list, nil
}

// NextSerial consume la secuencia de folios de movimientos.
func (r *MovementRepo) NextSerial() (int64, error) {
	var serial int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('movements_serial_seq')`).Scan(&serial)
	if err != nil {
		return 0, fmt.Errorf("next movement serial: %w", err)
	}
	return serial, nil
}

func (r *MovementRepo) insertItems(movement *entity.Movement) error {
	query := `
		INSERT INTO movement_items (movement_id, position, product_id, cantidad, notas)
		VALUES ($1, $2, $3, $4, $5)`
	for i, item := range movement.Items {
		if _, err := r.q.Exec(context.Background(), query,
			movement.ID, i, item.ProductID, item.Cantidad, item.Notas,
		); err != nil {
			return fmt.Errorf("insert movement item: %w", err)
		}
	}
	return nil
}

func (r *MovementRepo) loadItems(movementID string) ([]entity.MovementItem, error) {
	query := `
		SELECT product_id, cantidad, notas
		FROM movement_items WHERE movement_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, movementID)
	if err != nil {
		return nil, fmt.Errorf("load movement items: %w", err)
	}
	defer rows.Close()
	var items []entity.MovementItem
	for rows.Next() {
		var it entity.MovementItem
		if err := rows.Scan(&it.ProductID, &it.Cantidad, &it.Notas); err != nil {
			return nil, fmt.Errorf("scan movement item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *MovementRepo) scanWithItems(query, id, op string) (*entity.Movement, error) {
	var m entity.Movement
	row := r.q.QueryRow(context.Background(), query, id)
	if err := scanMovement(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := r.loadItems(m.ID)
	if err != nil {
		return nil, err
	}
	m.Items = items
	return &m, nil
}

// scanMovement lee las columnas de movementColumns en orden.
func scanMovement(row pgx.Row, m *entity.Movement) error {
	return row.Scan(
		&m.ID, &m.CompanyID, &m.Serial, &m.OriginID, &m.DestinationID,
		&m.Notas, &m.Status, &m.ResponsibleID, &m.CreatedAt, &m.UpdatedAt,
	)
}
