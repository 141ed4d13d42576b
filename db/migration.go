package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "talentflow-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration of User failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "migration of Job failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration of Candidate failed")
	}
	if err := DB.AutoMigrate(&dbmodels.StageTransition{}); err != nil {
		return errors.Wrap(err, "migration of StageTransition failed")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateNote{}); err != nil {
		return errors.Wrap(err, "migration of CandidateNote failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Assessment{}); err != nil {
		return errors.Wrap(err, "migration of Assessment failed")
	}
	if err := DB.AutoMigrate(&dbmodels.AssessmentQuestion{}); err != nil {
		return errors.Wrap(err, "migration of AssessmentQuestion failed")
	}
	if err := DB.AutoMigrate(&dbmodels.AssessmentResponse{}); err != nil {
		return errors.Wrap(err, "migration of AssessmentResponse failed")
	}
	if err := DB.AutoMigrate(&dbmodels.AssessmentDraft{}); err != nil {
		return errors.Wrap(err, "migration of AssessmentDraft failed")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "migration of FileStorage failed")
	}
	log.Info("migrations finished")
	return nil
}
