package service

import (
	"time"

	"anaesthesia-staffing-service/internal/models"
)

const (
	InitialAssignmentNote = "Initial assignment"
	AssignmentUpdatedNote = "Assignment updated"
)

// SeedTimeline returns the timeline of a newly created person: one open entry
// for the initial assignment.
func SeedTimeline(hospitalID string, grade models.Grade, now time.Time) []models.TimelineEntry {
	return []models.TimelineEntry{{
		From:       now,
		HospitalID: hospitalID,
		Grade:      grade,
		Note:       InitialAssignmentNote,
	}}
}

// AssignmentChanged reports whether applying patch to current moves the person
// to a different hospital or grade.
func AssignmentChanged(current models.Person, patch models.PersonPatch) bool {
	if patch.CurrentHospitalID != nil && *patch.CurrentHospitalID != current.HospitalIDOrEmpty() {
		return true
	}
	if patch.CurrentGrade != nil && *patch.CurrentGrade != current.CurrentGrade {
		return true
	}
	return false
}

// ReassignTimeline closes every open entry at now and appends a new open entry
// for the new assignment. The input slice is not modified.
func ReassignTimeline(timeline []models.TimelineEntry, hospitalID string, grade models.Grade, now time.Time) []models.TimelineEntry {
	updated := make([]models.TimelineEntry, 0, len(timeline)+1)
	for _, entry := range timeline {
		if entry.IsOpen() {
			to := now
			entry.To = &to
		}
		updated = append(updated, entry)
	}
	return append(updated, models.TimelineEntry{
		From:       now,
		HospitalID: hospitalID,
		Grade:      grade,
		Note:       AssignmentUpdatedNote,
	})
}

// OpenEntry returns the current assignment entry of the timeline, if any
func OpenEntry(timeline []models.TimelineEntry) (models.TimelineEntry, bool) {
	for i := len(timeline) - 1; i >= 0; i-- {
		if timeline[i].IsOpen() {
			return timeline[i], true
		}
	}
	return models.TimelineEntry{}, false
}
