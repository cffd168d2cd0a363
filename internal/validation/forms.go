package validation

import (
	"strings"

	"anaesthesia-staffing-service/internal/models"
)

// HospitalForm is the body of a hospital create request
type HospitalForm struct {
	Name       string `json:"name" binding:"required,max=200"`
	Province   string `json:"province" binding:"required,max=100"`
	District   string `json:"district" binding:"required,max=100"`
	Type       string `json:"type" binding:"required,hospital_type"`
	Allocation *int   `json:"allocation" binding:"required,min=0,max=100"`
	Notes      string `json:"notes"`
}

// Hospital converts the form into a new record
func (f HospitalForm) Hospital() models.Hospital {
	h := models.Hospital{
		Name:     f.Name,
		Province: f.Province,
		District: f.District,
		Type:     models.HospitalType(f.Type),
		Notes:    optional(f.Notes),
	}
	if f.Allocation != nil {
		h.Allocation = *f.Allocation
	}
	return h
}

// HospitalPatchForm is the body of a hospital update request; absent fields are left untouched
type HospitalPatchForm struct {
	Name       *string `json:"name" binding:"omitnil,min=1,max=200"`
	Province   *string `json:"province" binding:"omitnil,min=1,max=100"`
	District   *string `json:"district" binding:"omitnil,min=1,max=100"`
	Type       *string `json:"type" binding:"omitnil,hospital_type"`
	Allocation *int    `json:"allocation" binding:"omitnil,min=0,max=100"`
	Notes      string  `json:"notes"`
}

func (f HospitalPatchForm) Patch() models.HospitalPatch {
	p := models.HospitalPatch{
		Name:       f.Name,
		Province:   f.Province,
		District:   f.District,
		Allocation: f.Allocation,
		Notes:      optional(f.Notes),
	}
	if f.Type != nil {
		t := models.HospitalType(*f.Type)
		p.Type = &t
	}
	return p
}

// PersonForm is the body of a person create request
type PersonForm struct {
	FirstName               string `json:"first_name" binding:"required,max=100"`
	LastName                string `json:"last_name" binding:"required,max=100"`
	SLMCNumber              string `json:"slmc_number" binding:"required,max=20"`
	NationalID              string `json:"national_id" binding:"omitempty,max=20"`
	Phone                   string `json:"phone"`
	Phone2                  string `json:"phone2"`
	PersonalEmail           string `json:"personal_email" binding:"omitempty,email"`
	PGIMEmail               string `json:"pgim_email" binding:"omitempty,email"`
	Address                 string `json:"address" binding:"omitempty,max=500"`
	Gender                  string `json:"gender" binding:"omitempty,gender"`
	CurrentHospitalID       string `json:"current_hospital_id"`
	CurrentGrade            string `json:"current_grade" binding:"required,grade"`
	AnaesthesiaTrainingDone *bool  `json:"anaesthesia_training_done"`
}

// Person converts the form into a new record. Empty optional values are dropped.
func (f PersonForm) Person() models.Person {
	p := models.Person{
		FirstName:         f.FirstName,
		LastName:          f.LastName,
		SLMCNumber:        f.SLMCNumber,
		NationalID:        optional(f.NationalID),
		Phone:             optional(f.Phone),
		Phone2:            optional(f.Phone2),
		PersonalEmail:     optional(f.PersonalEmail),
		PGIMEmail:         optional(f.PGIMEmail),
		Address:           optional(f.Address),
		CurrentHospitalID: optional(f.CurrentHospitalID),
		CurrentGrade:      models.Grade(f.CurrentGrade),
	}
	if g := optional(f.Gender); g != nil {
		gender := models.Gender(*g)
		p.Gender = &gender
	}
	if f.AnaesthesiaTrainingDone != nil {
		p.AnaesthesiaTrainingDone = *f.AnaesthesiaTrainingDone
	}
	return p
}

// PersonPatchForm is the body of a person update request. An empty
// current_hospital_id unassigns the person; other empty optional values are ignored.
type PersonPatchForm struct {
	FirstName               *string `json:"first_name" binding:"omitnil,min=1,max=100"`
	LastName                *string `json:"last_name" binding:"omitnil,min=1,max=100"`
	SLMCNumber              *string `json:"slmc_number" binding:"omitnil,min=1,max=20"`
	NationalID              string  `json:"national_id" binding:"omitempty,max=20"`
	Phone                   string  `json:"phone"`
	Phone2                  string  `json:"phone2"`
	PersonalEmail           string  `json:"personal_email" binding:"omitempty,email"`
	PGIMEmail               string  `json:"pgim_email" binding:"omitempty,email"`
	Address                 string  `json:"address" binding:"omitempty,max=500"`
	Gender                  string  `json:"gender" binding:"omitempty,gender"`
	CurrentHospitalID       *string `json:"current_hospital_id"`
	CurrentGrade            *string `json:"current_grade" binding:"omitnil,grade"`
	AnaesthesiaTrainingDone *bool   `json:"anaesthesia_training_done"`
}

func (f PersonPatchForm) Patch() models.PersonPatch {
	p := models.PersonPatch{
		FirstName:               f.FirstName,
		LastName:                f.LastName,
		SLMCNumber:              f.SLMCNumber,
		NationalID:              optional(f.NationalID),
		Phone:                   optional(f.Phone),
		Phone2:                  optional(f.Phone2),
		PersonalEmail:           optional(f.PersonalEmail),
		PGIMEmail:               optional(f.PGIMEmail),
		Address:                 optional(f.Address),
		AnaesthesiaTrainingDone: f.AnaesthesiaTrainingDone,
	}
	if f.CurrentHospitalID != nil {
		id := strings.TrimSpace(*f.CurrentHospitalID)
		p.CurrentHospitalID = &id
	}
	if g := optional(f.Gender); g != nil {
		gender := models.Gender(*g)
		p.Gender = &gender
	}
	if f.CurrentGrade != nil {
		grade := models.Grade(*f.CurrentGrade)
		p.CurrentGrade = &grade
	}
	return p
}

// optional treats a blank value as absent
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
