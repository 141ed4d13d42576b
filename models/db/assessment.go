package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"talentflow-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Assessment is the per-job question set; at most one exists per job and a
// save replaces the whole set.
type Assessment struct {
	BaseModel
	JobID       string `gorm:"type:varchar(36);uniqueIndex"`
	Title       string `gorm:"type:varchar(255)"`
	Description string
}

func (a *Assessment) AfterDelete(tx *gorm.DB) (err error) {
	if a.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("assessment_id = ?", a.ID).Delete(&AssessmentQuestion{})
	tx.Clauses(clause.Returning{}).Where("assessment_id = ?", a.ID).Delete(&AssessmentResponse{})
	return
}

type AssessmentQuestion struct {
	BaseModel
	AssessmentID string              `gorm:"type:varchar(36);index"`
	Position     int                 // render and evaluation order
	Type         models.QuestionType `gorm:"type:varchar(50)"`
	Label        string
	Required     bool
	Options      QuestionOptions    `gorm:"type:jsonb"` // choice types only
	Placeholder  string             `gorm:"type:varchar(512)"`
	Validation   QuestionValidation `gorm:"type:jsonb"`
	Conditional  *QuestionCondition `gorm:"type:jsonb"`
}

type QuestionOptions []QuestionOption

type QuestionOption struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// NextOptionID follows the authoring rule: ids are max(existing)+1 and the
// option value defaults to its id.
func (o QuestionOptions) NextOptionID() int {
	maxID := 0
	for _, opt := range o {
		if opt.ID > maxID {
			maxID = opt.ID
		}
	}
	return maxID + 1
}

type QuestionValidation struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
}

type QuestionCondition struct {
	DependsOn string      `json:"dependsOn"`
	Condition string      `json:"condition"`
	Value     interface{} `json:"value"`
}

func (j QuestionOptions) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *QuestionOptions) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

func (j QuestionValidation) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *QuestionValidation) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

func (j QuestionCondition) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *QuestionCondition) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
