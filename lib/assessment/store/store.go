package assessmentstore

import (
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveWithQuestions(rec dbmodels.Assessment, questions []dbmodels.AssessmentQuestion) (id string, err error)
	GetByID(id string) (rec *dbmodels.Assessment, err error)
	GetByJobID(jobID string) (rec *dbmodels.Assessment, err error)
	DeleteByJobID(jobID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// SaveWithQuestions upserts the job's assessment and wholesale-replaces its
// question set in one transaction, so a fault can never leave a fresh title
// next to a stale or partial question list.
func (i impl) SaveWithQuestions(rec dbmodels.Assessment, questions []dbmodels.AssessmentQuestion) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		existing := dbmodels.Assessment{}
		err := tx.Where("job_id = ?", rec.JobID).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if existing.ID != "" {
			rec.ID = existing.ID
			rec.CreatedAt = existing.CreatedAt
		}
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		if err := tx.Where("assessment_id = ?", rec.ID).
			Delete(&dbmodels.AssessmentQuestion{}).Error; err != nil {
			return err
		}
		for idx := range questions {
			questions[idx].AssessmentID = rec.ID
			if err := tx.Create(&questions[idx]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByJobID(jobID string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Where("job_id = ?", jobID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) DeleteByJobID(jobID string) error {
	rec := dbmodels.Assessment{}
	err := i.db.Model(&dbmodels.Assessment{}).
		Where("job_id = ?", jobID).
		Delete(&rec).Error
	if err != nil {
		return err
	}
	return nil
}
