package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sucursales. Una sucursal referencia
// los almacenes desde los que se surte; se verifica que existan y sean de la
// misma empresa.
type BranchUseCase struct {
	repo          repository.BranchRepository
	warehouseRepo repository.WarehouseRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, warehouseRepo repository.WarehouseRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea una nueva sucursal.
func (uc *BranchUseCase) Create(companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if err := uc.checkWarehouses(companyID, in.WarehouseIDs); err != nil {
		return nil, err
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		Address:      in.Address,
		WarehouseIDs: in.WarehouseIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return toBranchResponse(branch), nil
}

// Update actualiza una sucursal.
func (uc *BranchUseCase) Update(companyID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.CompanyID != companyID {
		return nil, nil
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.WarehouseIDs != nil {
		if err := uc.checkWarehouses(companyID, in.WarehouseIDs); err != nil {
			return nil, err
		}
		branch.WarehouseIDs = in.WarehouseIDs
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales por empresa con paginación.
func (uc *BranchUseCase) List(companyID string, limit, offset int) (*dto.BranchListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una sucursal por ID.
func (uc *BranchUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// checkWarehouses verifica que cada almacén referenciado exista y pertenezca
// a la empresa.
func (uc *BranchUseCase) checkWarehouses(companyID string, ids []string) error {
	for _, id := range ids {
		warehouse, err := uc.warehouseRepo.GetByID(id)
		if err != nil {
			return err
		}
		if warehouse == nil || warehouse.CompanyID != companyID {
			return domain.ErrNotFound
		}
	}
	return nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	warehouseIDs := b.WarehouseIDs
	if warehouseIDs == nil {
		warehouseIDs = []string{}
	}
	return &dto.BranchResponse{
		ID:           b.ID,
		CompanyID:    b.CompanyID,
		Name:         b.Name,
		Address:      b.Address,
		WarehouseIDs: warehouseIDs,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
