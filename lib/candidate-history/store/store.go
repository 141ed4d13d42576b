package candidatehistorystore

import (
	dbmodels "talentflow-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.StageTransition) (id string, err error)
	CreateTx(tx *gorm.DB, rec dbmodels.StageTransition) (id string, err error)
	ListByCandidate(candidateID string) (list []dbmodels.StageTransition, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StageTransition) (id string, err error) {
	return i.CreateTx(i.db, rec)
}

// CreateTx writes the audit record inside the caller's transaction so a
// stage change and its history entry land atomically.
func (i impl) CreateTx(tx *gorm.DB, rec dbmodels.StageTransition) (id string, err error) {
	err = tx.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.StageTransition, err error) {
	list = []dbmodels.StageTransition{}
	err = i.db.
		Model(dbmodels.StageTransition{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
