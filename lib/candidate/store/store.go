package candidatestore

import (
	"fmt"
	"strings"

	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter dbmodels.CandidateFilter) (count int64, err error)
	List(filter dbmodels.CandidateFilter, page, limit int) (list []dbmodels.Candidate, err error)
	ListByUser(userID string) (list []dbmodels.Candidate, err error)
	GetByUserAndJob(userID, jobID string) (rec *dbmodels.Candidate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Where("id = ?", id).
		Preload("Job").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) ListCount(filter dbmodels.CandidateFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Candidate{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("candidate count query failed")
		return 0, errors.New("candidate count query failed")
	}
	return rowCount, nil
}

func (i impl) List(filter dbmodels.CandidateFilter, page, limit int) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(dbmodels.Candidate{})
	i.addFilter(tx, filter)
	offset := (page - 1) * limit
	// newest first so fresh applications land on the first page
	err = tx.Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Preload("Job").
		Find(&list).
		Error
	if err != nil {
		log.WithError(err).Error("candidate list query failed")
		return nil, errors.New("candidate list query failed")
	}
	return list, nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Model(dbmodels.Candidate{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Preload("Job").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByUserAndJob(userID, jobID string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
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

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.CandidateFilter) {
	if filter.Search != "" {
		search := fmt.Sprintf("%%%v%%", strings.ToLower(filter.Search))
		tx.Where("lower(name) like ? OR lower(email) like ?", search, search)
	}
	if filter.Stage != "" {
		tx.Where("stage = ?", filter.Stage)
	}
	if filter.JobID != "" {
		tx.Where("job_id = ?", filter.JobID)
	}
}
