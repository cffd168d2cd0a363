package database

import (
	"anaesthesia-staffing-service/internal/config"
	"anaesthesia-staffing-service/internal/repository"

	"github.com/sirupsen/logrus"
)

// Stores are the collection backends selected by STORE_DRIVER
type Stores struct {
	Hospitals repository.HospitalStore
	People    repository.PersonStore
	Audit     repository.AuditStore
}

// OpenStores connects to MySQL and migrates the schema, or builds an
// in-memory store when the memory driver is configured.
func OpenStores(cfg *config.Config, log logrus.FieldLogger) (Stores, error) {
	if cfg.Store.Driver == config.DriverMemory {
		log.Warn("Using in-memory store; data is lost on exit")
		mem := repository.NewMemoryStore()
		return Stores{Hospitals: mem, People: mem, Audit: mem}, nil
	}

	db, err := Connect(cfg, log)
	if err != nil {
		return Stores{}, err
	}
	if err := Migrate(db); err != nil {
		return Stores{}, err
	}
	return Stores{
		Hospitals: repository.NewHospitalRepo(db),
		People:    repository.NewPersonRepo(db),
		Audit:     repository.NewAuditRepo(db),
	}, nil
}
