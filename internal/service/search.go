package service

import (
	"strings"

	"anaesthesia-staffing-service/internal/models"
)

// Display fallbacks for a person's hospital
const (
	UnassignedLabel       = "Unassigned"
	HospitalNotFoundLabel = "Hospital not found"
)

// FilterHospitals keeps hospitals whose name, province or district contains term, ignoring case
func FilterHospitals(hospitals []models.Hospital, term string) []models.Hospital {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return hospitals
	}
	filtered := make([]models.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if containsFold(h.Name, term) || containsFold(h.Province, term) || containsFold(h.District, term) {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// FilterPeople keeps people whose full name, SLMC number or either email contains term, ignoring case
func FilterPeople(people []models.Person, term string) []models.Person {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return people
	}
	filtered := make([]models.Person, 0, len(people))
	for _, p := range people {
		if containsFold(p.FullName(), term) ||
			containsFold(p.SLMCNumber, term) ||
			(p.PersonalEmail != nil && containsFold(*p.PersonalEmail, term)) ||
			(p.PGIMEmail != nil && containsFold(*p.PGIMEmail, term)) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// HospitalName resolves the display name of a person's hospital. A missing
// reference is not an error: it falls back to a label.
func HospitalName(byID map[string]models.Hospital, hospitalID string) string {
	if hospitalID == "" {
		return UnassignedLabel
	}
	if h, ok := byID[hospitalID]; ok {
		return h.Name
	}
	return HospitalNotFoundLabel
}

func indexHospitals(hospitals []models.Hospital) map[string]models.Hospital {
	byID := make(map[string]models.Hospital, len(hospitals))
	for _, h := range hospitals {
		byID[h.ID] = h
	}
	return byID
}

// containsFold expects term already lower-cased
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}
