package dbmodels

import (
	"talentflow-backend/models"
)

// StageTransition is an append-only audit record; candidate creation writes
// one with FromStage == ToStage == applied to mark the application itself.
type StageTransition struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`
	FromStage   models.CandidateStage `gorm:"type:varchar(50)"`
	ToStage     models.CandidateStage `gorm:"type:varchar(50)"`
	UserID      *string               `gorm:"type:varchar(36)"`
	UserName    string                `gorm:"type:varchar(255)"`
	Notes       string
}
