package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lawledger/backend/internal/application/adapter"
	"github.com/lawledger/backend/internal/domain/entity"
	domainerror "github.com/lawledger/backend/internal/domain/error"
	"github.com/lawledger/backend/internal/integration/persistence/model"
)

// caseRepository implements the adapter.CaseRepository interface.
type caseRepository struct {
	db *gorm.DB
}

// NewCaseRepository creates a new case repository instance.
func NewCaseRepository(db *gorm.DB) adapter.CaseRepository {
	return &caseRepository{
		db: db,
	}
}

// Create creates a new case in the database.
func (r *caseRepository) Create(ctx context.Context, c *entity.Case) error {
	caseModel := model.CaseFromEntity(c)
	result := r.db.WithContext(ctx).Create(caseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a case by its ID.
func (r *caseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error) {
	var caseModel model.CaseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&caseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCaseNotFound
		}
		return nil, result.Error
	}
	return caseModel.ToEntity(), nil
}

// FindAll retrieves all cases ordered by creation time.
func (r *caseRepository) FindAll(ctx context.Context) ([]*entity.Case, error) {
	var caseModels []model.CaseModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&caseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cases := make([]*entity.Case, len(caseModels))
	for i, cm := range caseModels {
		cases[i] = cm.ToEntity()
	}
	return cases, nil
}

// FindByClientID retrieves all cases directly owned by the given client.
func (r *caseRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*entity.Case, error) {
	var caseModels []model.CaseModel
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&caseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cases := make([]*entity.Case, len(caseModels))
	for i, cm := range caseModels {
		cases[i] = cm.ToEntity()
	}
	return cases, nil
}

// Update updates an existing case in the database.
func (r *caseRepository) Update(ctx context.Context, c *entity.Case) error {
	caseModel := model.CaseFromEntity(c)
	// Save skips nil pointer columns, so a detached client needs an explicit
	// column update.
	result := r.db.WithContext(ctx).Model(&model.CaseModel{}).
		Where("id = ?", caseModel.ID).
		Updates(map[string]interface{}{
			"title":       caseModel.Title,
			"description": caseModel.Description,
			"status":      caseModel.Status,
			"client_id":   caseModel.ClientID,
			"updated_at":  caseModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCaseNotFound
	}
	return nil
}

// Delete removes a case from the database. The foreign-key cascade removes
// the case's expenses and incomes.
func (r *caseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CaseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCaseNotFound
	}
	return nil
}

// ExistsByID checks if a case with the given ID exists.
func (r *caseRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CaseModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
