// Package coverage derives staffing metrics from hospital and people snapshots.
// Everything here is a pure function of its inputs; nothing is cached.
package coverage

import "anaesthesia-staffing-service/internal/models"

// Status classifies how well a hospital's allocation is filled
type Status string

const (
	StatusFull     Status = "FULL"
	StatusGood     Status = "GOOD"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
)

// Classify maps an occupancy percentage to a status
func Classify(percentage float64) Status {
	switch {
	case percentage >= 100:
		return StatusFull
	case percentage >= 80:
		return StatusGood
	case percentage >= 50:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// Percentage returns assigned/allocation*100, or 0 when nothing is allocated
func Percentage(assigned, allocation int) float64 {
	if allocation <= 0 {
		return 0
	}
	return float64(assigned) / float64(allocation) * 100
}

// HospitalCoverage is the occupancy of a single hospital
type HospitalCoverage struct {
	Hospital      models.Hospital `json:"hospital"`
	TypeLabel     string          `json:"type_label"`
	AssignedCount int             `json:"assigned_count"`
	Percentage    float64         `json:"percentage"`
	Status        Status          `json:"status"`
}

// Summary is the system-wide view shown on the dashboard
type Summary struct {
	TotalHospitals       int                `json:"total_hospitals"`
	TotalPeople          int                `json:"total_people"`
	TotalAllocations     int                `json:"total_allocations"`
	CurrentAssignments   int                `json:"current_assignments"`
	Vacancies            int                `json:"vacancies"`
	CriticalHospitals    int                `json:"critical_hospitals"`
	OverallStaffingRatio float64            `json:"overall_staffing_ratio"`
	Hospitals            []HospitalCoverage `json:"hospitals"`
}

// ForHospital computes the coverage of h given its assigned head count
func ForHospital(h models.Hospital, assigned int) HospitalCoverage {
	pct := Percentage(assigned, h.Allocation)
	return HospitalCoverage{
		Hospital:      h,
		TypeLabel:     h.Type.Label(),
		AssignedCount: assigned,
		Percentage:    pct,
		Status:        Classify(pct),
	}
}

// CountByHospital groups assigned people by their current hospital id
func CountByHospital(people []models.Person) map[string]int {
	counts := make(map[string]int)
	for _, p := range people {
		if id := p.HospitalIDOrEmpty(); id != "" {
			counts[id]++
		}
	}
	return counts
}

// Compute derives per-hospital and system-wide metrics.
// Hospitals keep their input order. People assigned to a hospital id that is
// not in hospitals still count as current assignments.
func Compute(hospitals []models.Hospital, people []models.Person) Summary {
	counts := CountByHospital(people)

	summary := Summary{
		TotalHospitals: len(hospitals),
		TotalPeople:    len(people),
		Hospitals:      make([]HospitalCoverage, 0, len(hospitals)),
	}
	for _, h := range hospitals {
		hc := ForHospital(h, counts[h.ID])
		summary.TotalAllocations += h.Allocation
		if hc.Status == StatusCritical {
			summary.CriticalHospitals++
		}
		summary.Hospitals = append(summary.Hospitals, hc)
	}
	for _, n := range counts {
		summary.CurrentAssignments += n
	}
	summary.Vacancies = summary.TotalAllocations - summary.CurrentAssignments
	if summary.TotalAllocations > 0 {
		summary.OverallStaffingRatio = float64(summary.CurrentAssignments) / float64(summary.TotalAllocations)
	}
	return summary
}

// Top returns the first n hospital rows of the summary
func (s Summary) Top(n int) []HospitalCoverage {
	if n < 0 || n >= len(s.Hospitals) {
		return s.Hospitals
	}
	return s.Hospitals[:n]
}
