package dbmodels

import (
	"talentflow-backend/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Job struct {
	BaseModel
	Title       string           `gorm:"type:varchar(255)"`
	Slug        string           `gorm:"type:varchar(255);uniqueIndex"`
	Status      models.JobStatus `gorm:"type:varchar(50);index"`
	Tags        pq.StringArray   `gorm:"type:text[]"`
	Position    int              `gorm:"index"`
	Description string
}

func (j *Job) AfterDelete(tx *gorm.DB) (err error) {
	if j.ID == "" {
		return nil
	}
	assessment := Assessment{}
	tx.Clauses(clause.Returning{}).Where("job_id = ?", j.ID).Delete(&assessment)
	tx.Clauses(clause.Returning{}).Where("job_id = ?", j.ID).Delete(&AssessmentDraft{})
	return
}

type JobSortSpec struct {
	By models.JobSort `json:"by"` // position/title/created, default position
}

type JobFilter struct {
	Search   string           `json:"search"` // matched against title and slug
	Status   models.JobStatus `json:"status"`
	Tag      string           `json:"tag"`
	Sort     JobSortSpec      `json:"sort"`
}
