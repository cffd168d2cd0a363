package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"anaesthesia-staffing-service/internal/config"
	"anaesthesia-staffing-service/internal/database"
	"anaesthesia-staffing-service/internal/seed"
	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/pkg/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "seed.yaml", "YAML seed file with hospitals and people")
	actor := flag.String("actor", "seed", "actor recorded in audit logs")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: seed -file seed.yaml\n\nGrades: %s\n\n", seed.Grades())
		flag.PrintDefaults()
	}
	flag.Parse()

	base := logrus.New()
	cfg, err := config.LoadConfig()
	if err != nil {
		base.WithError(err).Fatal("Invalid configuration")
	}
	log := logger.New(base, cfg.Log.File, "anaesthesia-staffing-seed", cfg.Log.Environment)
	logger.SetLevel(base, cfg.Log.Level)

	f, err := seed.LoadFile(*file)
	if err != nil {
		log.WithError(err).Fatal("Failed to read seed file")
	}

	stores, err := database.OpenStores(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open record stores")
	}
	staffing := service.NewStaffingService(stores.Hospitals, stores.People, stores.Audit, log, cfg.Store.PeoplePageSize)

	result, err := seed.Apply(context.Background(), staffing, f, *actor, log)
	if err != nil {
		log.WithError(err).Error("Seeding failed")
		os.Exit(1)
	}
	fmt.Printf("hospitals: %d created, %d skipped; people: %d created, %d skipped\n",
		result.HospitalsCreated, result.HospitalsSkipped, result.PeopleCreated, result.PeopleSkipped)
}
