package repository

import (
	"context"
	"errors"

	"anaesthesia-staffing-service/internal/models"

	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepo(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// PagePeople retrieves up to limit people ordered by last name, starting strictly after the cursor
func (r *PersonRepository) PagePeople(ctx context.Context, after *Cursor, limit int) ([]models.Person, error) {
	var people []models.Person
	query := r.db.WithContext(ctx).
		Order("last_name ASC").
		Order("id ASC").
		Limit(limit)
	if after != nil {
		query = query.Where("last_name > ? OR (last_name = ? AND id > ?)", after.LastName, after.LastName, after.ID)
	}
	err := query.Find(&people).Error
	return people, err
}

// GetPerson retrieves a person by ID
func (r *PersonRepository) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &person, nil
}

// CreatePerson creates a new person; the identity is issued by the BeforeCreate hook
func (r *PersonRepository) CreatePerson(ctx context.Context, person *models.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

// UpdatePerson writes only the columns provided in the patch, timeline included
func (r *PersonRepository) UpdatePerson(ctx context.Context, id string, patch models.PersonPatch) error {
	result := r.db.WithContext(ctx).
		Model(&models.Person{}).
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

// DeletePerson removes a person
func (r *PersonRepository) DeletePerson(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Person{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
