package questionstore

import (
	dbmodels "talentflow-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	ListByAssessment(assessmentID string) (list []dbmodels.AssessmentQuestion, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) ListByAssessment(assessmentID string) (list []dbmodels.AssessmentQuestion, err error) {
	list = []dbmodels.AssessmentQuestion{}
	err = i.db.
		Model(dbmodels.AssessmentQuestion{}).
		Where("assessment_id = ?", assessmentID).
		Order("position asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
