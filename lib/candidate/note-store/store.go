package notestore

import (
	dbmodels "talentflow-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CandidateNote) (id string, err error)
	ListByCandidate(candidateID string) (list []dbmodels.CandidateNote, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateNote) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.CandidateNote, err error) {
	list = []dbmodels.CandidateNote{}
	err = i.db.
		Model(dbmodels.CandidateNote{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
