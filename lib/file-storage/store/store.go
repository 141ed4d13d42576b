package filestore

import (
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.FileStorage) (id string, err error)
	GetByCandidateAndType(candidateID string, fileType dbmodels.FileType) (rec *dbmodels.FileStorage, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Save keeps one record per (candidate, file type); a re-upload replaces
// the previous record instead of accumulating copies.
func (i impl) Save(rec dbmodels.FileStorage) (id string, err error) {
	existing, err := i.GetByCandidateAndType(rec.CandidateID, rec.FileType)
	if err != nil {
		return "", err
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByCandidateAndType(candidateID string, fileType dbmodels.FileType) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("candidate_id = ?", candidateID).
		Where("file_type = ?", fileType).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.FileStorage{}
	err := i.db.Model(&dbmodels.FileStorage{}).
		Where("id = ?", id).
		Delete(&rec).Error
	if err != nil {
		return err
	}
	return nil
}
