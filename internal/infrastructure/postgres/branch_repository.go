package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
// Los almacenes de la sucursal viven en la tabla puente branch_warehouses.
type BranchRepo struct {
	pool *pgxpool.Pool
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepo {
	return &BranchRepo{pool: pool}
}

// Create persiste una nueva sucursal y sus referencias a almacenes.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO branches (id, company_id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		branch.ID, branch.CompanyID, branch.Name, branch.Address,
		branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return r.replaceWarehouses(branch.ID, branch.WarehouseIDs)
}

// GetByID obtiene una sucursal por ID con sus almacenes; nil si no existe.
func (r *BranchRepo) GetByID(id string) (*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, address, created_at, updated_at
		FROM branches WHERE id = $1`
	var b entity.Branch
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	warehouseIDs, err := r.loadWarehouses(b.ID)
	if err != nil {
		return nil, err
	}
	b.WarehouseIDs = warehouseIDs
	return &b, nil
}

// Update actualiza una sucursal y reemplaza sus referencias a almacenes.
func (r *BranchRepo) Update(branch *entity.Branch) error {
	query := `
		UPDATE branches SET name = $2, address = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		branch.ID, branch.Name, branch.Address, branch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	return r.replaceWarehouses(branch.ID, branch.WarehouseIDs)
}

// ListByCompany lista sucursales por empresa con paginación.
func (r *BranchRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error) {
	query := `
		SELECT id, company_id, name, address, created_at, updated_at
		FROM branches WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, b := range list {
		warehouseIDs, err := r.loadWarehouses(b.ID)
		if err != nil {
			return nil, err
		}
		b.WarehouseIDs = warehouseIDs
	}
	return list, nil
}

// Delete elimina una sucursal por ID (las filas puente caen por FK cascade).
func (r *BranchRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	return nil
}

func (r *BranchRepo) loadWarehouses(branchID string) ([]string, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT warehouse_id FROM branch_warehouses WHERE branch_id = $1 ORDER BY warehouse_id`, branchID)
	if err != nil {
		return nil, fmt.Errorf("load branch warehouses: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan branch warehouse: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *BranchRepo) replaceWarehouses(branchID string, warehouseIDs []string) error {
	if _, err := r.pool.Exec(context.Background(),
		`DELETE FROM branch_warehouses WHERE branch_id = $1`, branchID); err != nil {
		return fmt.Errorf("clear branch warehouses: %w", err)
	}
	for _, warehouseID := range warehouseIDs {
		if _, err := r.pool.Exec(context.Background(),
			`INSERT INTO branch_warehouses (branch_id, warehouse_id) VALUES ($1, $2)`,
			branchID, warehouseID); err != nil {
			return fmt.Errorf("insert branch warehouse: %w", err)
		}
	}
	return nil
}
