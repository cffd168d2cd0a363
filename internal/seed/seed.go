// Package seed loads hospitals and people from a YAML file into the store
// through the staffing services, so seeded records get timelines and audit rows
// like any other write.
package seed

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"anaesthesia-staffing-service/internal/models"
	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/internal/validation"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the layout of a seed file
type File struct {
	Hospitals []Hospital `yaml:"hospitals"`
	People    []Person   `yaml:"people"`
}

type Hospital struct {
	Name       string `yaml:"name"`
	Province   string `yaml:"province"`
	District   string `yaml:"district"`
	Type       string `yaml:"type"`
	Allocation *int   `yaml:"allocation"`
	Notes      string `yaml:"notes"`
}

// Person refers to its hospital by name
type Person struct {
	FirstName               string `yaml:"first_name"`
	LastName                string `yaml:"last_name"`
	SLMCNumber              string `yaml:"slmc_number"`
	NationalID              string `yaml:"national_id"`
	Phone                   string `yaml:"phone"`
	Phone2                  string `yaml:"phone2"`
	PersonalEmail           string `yaml:"personal_email"`
	PGIMEmail               string `yaml:"pgim_email"`
	Address                 string `yaml:"address"`
	Gender                  string `yaml:"gender"`
	Hospital                string `yaml:"hospital"`
	Grade                   string `yaml:"grade"`
	AnaesthesiaTrainingDone *bool  `yaml:"anaesthesia_training_done"`
}

// Result counts the records written by Apply
type Result struct {
	HospitalsCreated int
	HospitalsSkipped int
	PeopleCreated    int
	PeopleSkipped    int
}

// Parse decodes a seed file from YAML bytes
func Parse(data []byte) (File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return File{}, fmt.Errorf("seed: file is empty")
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("seed: decode: %w", err)
	}
	return f, nil
}

// LoadFile reads and decodes a seed file from disk
func LoadFile(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	f, err := Parse(content)
	if err != nil {
		return File{}, fmt.Errorf("seed: %s: %w", path, err)
	}
	return f, nil
}

func (h Hospital) form() validation.HospitalForm {
	return validation.HospitalForm{
		Name:       h.Name,
		Province:   h.Province,
		District:   h.District,
		Type:       h.Type,
		Allocation: h.Allocation,
		Notes:      h.Notes,
	}
}

func (p Person) form(hospitalID string) validation.PersonForm {
	return validation.PersonForm{
		FirstName:               p.FirstName,
		LastName:                p.LastName,
		SLMCNumber:              p.SLMCNumber,
		NationalID:              p.NationalID,
		Phone:                   p.Phone,
		Phone2:                  p.Phone2,
		PersonalEmail:           p.PersonalEmail,
		PGIMEmail:               p.PGIMEmail,
		Address:                 p.Address,
		Gender:                  p.Gender,
		CurrentHospitalID:       hospitalID,
		CurrentGrade:            p.Grade,
		AnaesthesiaTrainingDone: p.AnaesthesiaTrainingDone,
	}
}

// Apply writes the file's records. Hospitals whose name already exists and
// people whose SLMC number already exists are skipped, so a file can be
// applied more than once. Every record is validated before anything is written.
func Apply(ctx context.Context, staffing *service.StaffingService, f File, actor string, log logrus.FieldLogger) (Result, error) {
	if err := validate(f); err != nil {
		return Result{}, err
	}
	if err := loadAll(ctx, staffing); err != nil {
		return Result{}, err
	}

	var result Result
	hospitalIDs := make(map[string]string)
	for _, h := range staffing.Hospitals.Hospitals() {
		hospitalIDs[strings.ToLower(h.Name)] = h.ID
	}
	if err := checkReferences(f, hospitalIDs); err != nil {
		return Result{}, err
	}

	for _, h := range f.Hospitals {
		key := strings.ToLower(h.Name)
		if _, exists := hospitalIDs[key]; exists {
			result.HospitalsSkipped++
			continue
		}
		created, err := staffing.Hospitals.CreateHospital(ctx, h.form().Hospital(), actor)
		if err != nil {
			return result, fmt.Errorf("seed: hospital %q: %w", h.Name, err)
		}
		hospitalIDs[key] = created.ID
		result.HospitalsCreated++
	}

	slmc := make(map[string]bool)
	for _, p := range staffing.People.People() {
		slmc[p.SLMCNumber] = true
	}

	for _, p := range f.People {
		if slmc[p.SLMCNumber] {
			result.PeopleSkipped++
			continue
		}
		hospitalID := ""
		if p.Hospital != "" {
			id, ok := hospitalIDs[strings.ToLower(p.Hospital)]
			if !ok {
				return result, fmt.Errorf("seed: person %s: unknown hospital %q", p.SLMCNumber, p.Hospital)
			}
			hospitalID = id
		}
		if _, err := staffing.People.CreatePerson(ctx, p.form(hospitalID).Person(), actor); err != nil {
			return result, fmt.Errorf("seed: person %s: %w", p.SLMCNumber, err)
		}
		slmc[p.SLMCNumber] = true
		result.PeopleCreated++
	}

	log.WithFields(logrus.Fields{
		"hospitals_created": result.HospitalsCreated,
		"hospitals_skipped": result.HospitalsSkipped,
		"people_created":    result.PeopleCreated,
		"people_skipped":    result.PeopleSkipped,
	}).Info("Seed applied")
	return result, nil
}

func validate(f File) error {
	for i, h := range f.Hospitals {
		if err := validation.Struct(h.form()); err != nil {
			return fmt.Errorf("seed: hospitals[%d]: %w", i, err)
		}
	}
	for i, p := range f.People {
		if err := validation.Struct(p.form("")); err != nil {
			return fmt.Errorf("seed: people[%d]: %w", i, err)
		}
	}
	return nil
}

// checkReferences fails when a person names a hospital that is neither stored
// nor declared in the file
func checkReferences(f File, stored map[string]string) error {
	declared := make(map[string]bool, len(f.Hospitals))
	for _, h := range f.Hospitals {
		declared[strings.ToLower(h.Name)] = true
	}
	for i, p := range f.People {
		if p.Hospital == "" {
			continue
		}
		key := strings.ToLower(p.Hospital)
		if _, ok := stored[key]; ok || declared[key] {
			continue
		}
		return fmt.Errorf("seed: people[%d]: person %s: unknown hospital %q", i, p.SLMCNumber, p.Hospital)
	}
	return nil
}

// loadAll loads hospitals and every page of people so duplicates can be detected
func loadAll(ctx context.Context, staffing *service.StaffingService) error {
	if err := staffing.Refresh(ctx); err != nil {
		return fmt.Errorf("seed: load: %w", err)
	}
	for staffing.People.HasMore() {
		before := len(staffing.People.People())
		if err := staffing.People.LoadMore(ctx); err != nil {
			return fmt.Errorf("seed: load people: %w", err)
		}
		if len(staffing.People.People()) == before {
			break
		}
	}
	return nil
}

// Grades lists the accepted grade codes, for usage text
func Grades() string {
	codes := make([]string, 0, len(models.Grades))
	for _, g := range models.Grades {
		codes = append(codes, string(g))
	}
	return strings.Join(codes, ", ")
}
