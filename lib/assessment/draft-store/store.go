package draftstore

import (
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(userID, jobID string, answers dbmodels.AnswerSet) error
	Get(userID, jobID string) (rec *dbmodels.AssessmentDraft, err error)
	Delete(userID, jobID string) error
	DeleteTx(tx *gorm.DB, userID, jobID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert keeps exactly one draft slot per (user, job); every autosave
// overwrites the previous snapshot.
func (i impl) Upsert(userID, jobID string, answers dbmodels.AnswerSet) error {
	rec := dbmodels.AssessmentDraft{
		UserID:  userID,
		JobID:   jobID,
		Answers: answers,
	}
	err := i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"answers", "updated_at"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Get(userID, jobID string) (*dbmodels.AssessmentDraft, error) {
	rec := dbmodels.AssessmentDraft{}
	err := i.db.
		Where("user_id = ?", userID).
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

func (i impl) Delete(userID, jobID string) error {
	return i.DeleteTx(i.db, userID, jobID)
}

func (i impl) DeleteTx(tx *gorm.DB, userID, jobID string) error {
	rec := dbmodels.AssessmentDraft{}
	err := tx.Model(&dbmodels.AssessmentDraft{}).
		Where("user_id = ?", userID).
		Where("job_id = ?", jobID).
		Delete(&rec).Error
	if err != nil {
		return err
	}
	return nil
}
