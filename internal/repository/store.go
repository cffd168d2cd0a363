package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"anaesthesia-staffing-service/internal/models"
)

// ErrNotFound is returned when a record with the given identity does not exist
var ErrNotFound = errors.New("record not found")

// ErrInvalidCursor is returned for a cursor token that Encode did not produce
var ErrInvalidCursor = errors.New("invalid cursor")

// HospitalStore is the contract of the hospitals collection
type HospitalStore interface {
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	CreateHospital(ctx context.Context, hospital *models.Hospital) error
	UpdateHospital(ctx context.Context, id string, patch models.HospitalPatch) error
	DeleteHospital(ctx context.Context, id string) error
}

// PersonStore is the contract of the people collection
type PersonStore interface {
	PagePeople(ctx context.Context, after *Cursor, limit int) ([]models.Person, error)
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	CreatePerson(ctx context.Context, person *models.Person) error
	UpdatePerson(ctx context.Context, id string, patch models.PersonPatch) error
	DeletePerson(ctx context.Context, id string) error
}

// AuditStore records who changed what
type AuditStore interface {
	CreateAuditLog(ctx context.Context, actor, action, details string) error
}

// Cursor marks the last person of a fetched page. People are ordered by
// last name, ties broken by id, so the pair identifies a unique position.
type Cursor struct {
	LastName string `json:"l"`
	ID       string `json:"i"`
}

// CursorAfter returns the cursor positioned on the last person of page, or nil for an empty page
func CursorAfter(page []models.Person) *Cursor {
	if len(page) == 0 {
		return nil
	}
	last := page[len(page)-1]
	return &Cursor{LastName: last.LastName, ID: last.ID}
}

// Encode returns the opaque token form of the cursor
func (c Cursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses a token produced by Encode
func DecodeCursor(token string) (*Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if c.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidCursor)
	}
	return &c, nil
}

// After reports whether p sorts strictly after the cursor
func (c Cursor) After(p models.Person) bool {
	if p.LastName != c.LastName {
		return p.LastName > c.LastName
	}
	return p.ID > c.ID
}
