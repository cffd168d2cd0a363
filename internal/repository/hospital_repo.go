package repository

import (
	"context"

	"anaesthesia-staffing-service/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// ListHospitals retrieves every hospital ordered by name
func (r *HospitalRepository) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.WithContext(ctx).Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// CreateHospital creates a new hospital; the identity is issued by the BeforeCreate hook
func (r *HospitalRepository) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

// UpdateHospital writes only the columns provided in the patch
func (r *HospitalRepository) UpdateHospital(ctx context.Context, id string, patch models.HospitalPatch) error {
	result := r.db.WithContext(ctx).
		Model(&models.Hospital{}).
		Where("id = ?", id).
		Updates(patch.Columns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteHospital removes a hospital. People referencing it are left untouched.
func (r *HospitalRepository) DeleteHospital(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Hospital{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
