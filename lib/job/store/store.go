package jobstore

import (
	"fmt"
	"strings"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	GetBySlug(slug string) (rec *dbmodels.Job, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter dbmodels.JobFilter) (count int64, err error)
	List(filter dbmodels.JobFilter, page, limit int) (list []dbmodels.Job, err error)
	MaxPosition() (int, error)
	MoveToPosition(id string, target int) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
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

func (i impl) GetBySlug(slug string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Where("slug = ?", slug).
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
		Model(&dbmodels.Job{}).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(filter dbmodels.JobFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Job{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("job count query failed")
		return 0, errors.New("job count query failed")
	}
	return rowCount, nil
}

func (i impl) List(filter dbmodels.JobFilter, page, limit int) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(dbmodels.Job{})
	i.addFilter(tx, filter)
	i.addSort(tx, filter.Sort)
	offset := (page - 1) * limit
	err = tx.Offset(offset).Limit(limit).Find(&list).Error
	if err != nil {
		log.WithError(err).Error("job list query failed")
		return nil, errors.New("job list query failed")
	}
	return list, nil
}

func (i impl) MaxPosition() (int, error) {
	var max *int
	err := i.db.
		Model(dbmodels.Job{}).
		Select("max(position)").
		Scan(&max).
		Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// MoveToPosition shifts every job between the old and new position by one so
// the display order stays dense. Runs in a single transaction.
func (i impl) MoveToPosition(id string, target int) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.Job{}
		err := tx.Where("id = ?", id).First(&rec).Error
		if err != nil {
			return err
		}
		if rec.Position == target {
			return nil
		}
		if rec.Position < target {
			err = tx.Model(dbmodels.Job{}).
				Where("position > ? AND position <= ?", rec.Position, target).
				UpdateColumn("position", gorm.Expr("position - 1")).
				Error
		} else {
			err = tx.Model(dbmodels.Job{}).
				Where("position >= ? AND position < ?", target, rec.Position).
				UpdateColumn("position", gorm.Expr("position + 1")).
				Error
		}
		if err != nil {
			return err
		}
		return tx.Model(dbmodels.Job{}).
			Where("id = ?", id).
			UpdateColumn("position", target).
			Error
	})
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.JobFilter) {
	if filter.Search != "" {
		search := fmt.Sprintf("%%%v%%", strings.ToLower(filter.Search))
		tx.Where("lower(title) like ? OR lower(slug) like ?", search, search)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Tag != "" {
		tx.Where("? = ANY(tags)", filter.Tag)
	}
}

func (i impl) addSort(tx *gorm.DB, sort dbmodels.JobSortSpec) {
	switch sort.By {
	case models.JobSortTitle:
		tx.Order("title asc")
	case models.JobSortCreated:
		tx.Order("created_at desc")
	default:
		tx.Order("position asc")
	}
}
