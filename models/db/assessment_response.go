package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// AssessmentResponse is immutable once written; the composite unique index
// enforces at most one submission per assessment and candidate, including
// under concurrent submits from two sessions.
type AssessmentResponse struct {
	BaseModel
	AssessmentID string `gorm:"type:varchar(36);index;uniqueIndex:idx_assessment_candidate"`
	CandidateID  string `gorm:"type:varchar(36);uniqueIndex:idx_assessment_candidate"`
	JobID        string `gorm:"type:varchar(36);index"`
	Answers      AnswerSet `gorm:"type:jsonb"`
	SubmittedAt  time.Time
}

// AnswerSet maps question id to the submitted value: string, float64,
// []interface{} or nil, depending on the question type.
type AnswerSet map[string]interface{}

func (j AnswerSet) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AnswerSet) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
