package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hospital represents a hospital with its government-allocated anaesthesiologist positions
type Hospital struct {
	ID         string       `gorm:"primaryKey;size:36" json:"id"`
	Name       string       `gorm:"size:200;not null;index" json:"name"`
	Province   string       `gorm:"size:100;not null" json:"province"`
	District   string       `gorm:"size:100;not null" json:"district"`
	Type       HospitalType `gorm:"size:50;not null" json:"type"`
	Allocation int          `gorm:"not null;default:0" json:"allocation"`
	Notes      *string      `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// BeforeCreate issues the record identity when the caller did not supply one
func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// HospitalPatch carries the fields of a partial hospital update.
// A nil field was not provided and is neither written nor merged.
type HospitalPatch struct {
	Name       *string
	Province   *string
	District   *string
	Type       *HospitalType
	Allocation *int
	Notes      *string
	UpdatedAt  time.Time
}

// Columns returns the column/value pairs to write for the patch
func (p HospitalPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Province != nil {
		cols["province"] = *p.Province
	}
	if p.District != nil {
		cols["district"] = *p.District
	}
	if p.Type != nil {
		cols["type"] = string(*p.Type)
	}
	if p.Allocation != nil {
		cols["allocation"] = *p.Allocation
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if !p.UpdatedAt.IsZero() {
		cols["updated_at"] = p.UpdatedAt
	}
	return cols
}

// Apply merges the provided fields into h
func (p HospitalPatch) Apply(h *Hospital) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Province != nil {
		h.Province = *p.Province
	}
	if p.District != nil {
		h.District = *p.District
	}
	if p.Type != nil {
		h.Type = *p.Type
	}
	if p.Allocation != nil {
		h.Allocation = *p.Allocation
	}
	if p.Notes != nil {
		notes := *p.Notes
		h.Notes = &notes
	}
	if !p.UpdatedAt.IsZero() {
		h.UpdatedAt = p.UpdatedAt
	}
}

// SortHospitalsByName orders hospitals by name, ignoring case
func SortHospitalsByName(hospitals []Hospital) {
	sort.SliceStable(hospitals, func(i, j int) bool {
		return strings.ToLower(hospitals[i].Name) < strings.ToLower(hospitals[j].Name)
	})
}
