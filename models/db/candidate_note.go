package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

type CandidateNote struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`
	AuthorID    *string `gorm:"type:varchar(36)"`
	AuthorName  string  `gorm:"type:varchar(255)"`
	Content     string
	Mentions    NoteMentions `gorm:"type:jsonb"`
}

type NoteMentions []string

func (j NoteMentions) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *NoteMentions) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}
