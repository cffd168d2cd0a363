package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TimelineEntry is one assignment period in a person's career.
// An entry with a nil To is the open entry mirroring the current assignment.
type TimelineEntry struct {
	From       time.Time  `json:"from"`
	To         *time.Time `json:"to,omitempty"`
	HospitalID string     `json:"hospital_id"`
	Grade      Grade      `json:"grade"`
	Note       string     `json:"note,omitempty"`
}

// IsOpen reports whether the entry is the current assignment
func (e TimelineEntry) IsOpen() bool {
	return e.To == nil
}

// Person represents an anaesthesiologist and their assignment history
type Person struct {
	ID                      string                             `gorm:"primaryKey;size:36" json:"id"`
	FirstName               string                             `gorm:"size:100;not null" json:"first_name"`
	LastName                string                             `gorm:"size:100;not null;index" json:"last_name"`
	SLMCNumber              string                             `gorm:"column:slmc_number;size:20;not null" json:"slmc_number"`
	NationalID              *string                            `gorm:"size:20" json:"national_id,omitempty"`
	Phone                   *string                            `gorm:"size:30" json:"phone,omitempty"`
	Phone2                  *string                            `gorm:"column:phone2;size:30" json:"phone2,omitempty"`
	PersonalEmail           *string                            `gorm:"size:255" json:"personal_email,omitempty"`
	PGIMEmail               *string                            `gorm:"column:pgim_email;size:255" json:"pgim_email,omitempty"`
	Address                 *string                            `gorm:"size:500" json:"address,omitempty"`
	Gender                  *Gender                            `gorm:"size:10" json:"gender,omitempty"`
	CurrentHospitalID       *string                            `gorm:"size:36;index" json:"current_hospital_id,omitempty"`
	CurrentGrade            Grade                              `gorm:"size:20;not null" json:"current_grade"`
	AnaesthesiaTrainingDone bool                               `gorm:"default:false" json:"anaesthesia_training_done"`
	Timeline                datatypes.JSONSlice[TimelineEntry] `gorm:"type:json" json:"timeline"`
	CreatedAt               time.Time                          `json:"created_at"`
	UpdatedAt               time.Time                          `json:"updated_at"`
}

// TableName specifies the table name for Person model
func (Person) TableName() string {
	return "people"
}

// BeforeCreate issues the record identity when the caller did not supply one
func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// FullName returns "first last"
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// HospitalIDOrEmpty returns the current hospital id, or "" when unassigned
func (p Person) HospitalIDOrEmpty() string {
	if p.CurrentHospitalID == nil {
		return ""
	}
	return *p.CurrentHospitalID
}

// IsAssigned reports whether the person currently has a hospital
func (p Person) IsAssigned() bool {
	return p.HospitalIDOrEmpty() != ""
}

// Clone returns a copy that shares no mutable slice with p
func (p Person) Clone() Person {
	if p.Timeline != nil {
		timeline := make([]TimelineEntry, len(p.Timeline))
		copy(timeline, p.Timeline)
		p.Timeline = timeline
	}
	return p
}

// PersonPatch carries the fields of a partial person update.
// A nil field was not provided. CurrentHospitalID pointing at "" unassigns the person.
type PersonPatch struct {
	FirstName               *string
	LastName                *string
	SLMCNumber              *string
	NationalID              *string
	Phone                   *string
	Phone2                  *string
	PersonalEmail           *string
	PGIMEmail               *string
	Address                 *string
	Gender                  *Gender
	CurrentHospitalID       *string
	CurrentGrade            *Grade
	AnaesthesiaTrainingDone *bool
	Timeline                []TimelineEntry
	UpdatedAt               time.Time
}

// Columns returns the column/value pairs to write for the patch
func (p PersonPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}
	setString("first_name", p.FirstName)
	setString("last_name", p.LastName)
	setString("slmc_number", p.SLMCNumber)
	setString("national_id", p.NationalID)
	setString("phone", p.Phone)
	setString("phone2", p.Phone2)
	setString("personal_email", p.PersonalEmail)
	setString("pgim_email", p.PGIMEmail)
	setString("address", p.Address)
	if p.Gender != nil {
		cols["gender"] = string(*p.Gender)
	}
	if p.CurrentHospitalID != nil {
		if *p.CurrentHospitalID == "" {
			cols["current_hospital_id"] = nil
		} else {
			cols["current_hospital_id"] = *p.CurrentHospitalID
		}
	}
	if p.CurrentGrade != nil {
		cols["current_grade"] = string(*p.CurrentGrade)
	}
	if p.AnaesthesiaTrainingDone != nil {
		cols["anaesthesia_training_done"] = *p.AnaesthesiaTrainingDone
	}
	if p.Timeline != nil {
		cols["timeline"] = datatypes.JSONSlice[TimelineEntry](p.Timeline)
	}
	if !p.UpdatedAt.IsZero() {
		cols["updated_at"] = p.UpdatedAt
	}
	return cols
}

// Apply merges the provided fields into person
func (p PersonPatch) Apply(person *Person) {
	copyString := func(dst **string, v *string) {
		if v != nil {
			s := *v
			*dst = &s
		}
	}
	if p.FirstName != nil {
		person.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		person.LastName = *p.LastName
	}
	if p.SLMCNumber != nil {
		person.SLMCNumber = *p.SLMCNumber
	}
	copyString(&person.NationalID, p.NationalID)
	copyString(&person.Phone, p.Phone)
	copyString(&person.Phone2, p.Phone2)
	copyString(&person.PersonalEmail, p.PersonalEmail)
	copyString(&person.PGIMEmail, p.PGIMEmail)
	copyString(&person.Address, p.Address)
	if p.Gender != nil {
		g := *p.Gender
		person.Gender = &g
	}
	if p.CurrentHospitalID != nil {
		if *p.CurrentHospitalID == "" {
			person.CurrentHospitalID = nil
		} else {
			copyString(&person.CurrentHospitalID, p.CurrentHospitalID)
		}
	}
	if p.CurrentGrade != nil {
		person.CurrentGrade = *p.CurrentGrade
	}
	if p.AnaesthesiaTrainingDone != nil {
		person.AnaesthesiaTrainingDone = *p.AnaesthesiaTrainingDone
	}
	if p.Timeline != nil {
		timeline := make([]TimelineEntry, len(p.Timeline))
		copy(timeline, p.Timeline)
		person.Timeline = timeline
	}
	if !p.UpdatedAt.IsZero() {
		person.UpdatedAt = p.UpdatedAt
	}
}
