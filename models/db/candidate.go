package dbmodels

import (
	"talentflow-backend/models"
)

type Candidate struct {
	BaseModel
	Name       string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255);index"`
	Phone      string `gorm:"type:varchar(100)"`
	JobID      string `gorm:"type:varchar(36);index"`
	Job        *Job
	Stage      models.CandidateStage `gorm:"type:varchar(50);index"`
	UserID     *string               `gorm:"type:varchar(36)"`
	ResumeLink string                `gorm:"type:varchar(1024)"`
}

type CandidateFilter struct {
	Search string                `json:"search"` // matched against name and email
	Stage  models.CandidateStage `json:"stage"`
	JobID  string                `json:"job_id"`
}
