package jobapimodels

import (
	"strings"
	"time"

	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
)

type JobData struct {
	Title       string           `json:"title"`       // job title
	Slug        string           `json:"slug"`        // derived from title when empty on create
	Status      models.JobStatus `json:"status"`      // active/archived
	Tags        []string         `json:"tags"`        // free-form labels
	Description string           `json:"description"` // full description
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("title is required")
	}
	if j.Status != "" && !j.Status.IsValid() {
		return errors.New("unknown job status")
	}
	return nil
}

type JobView struct {
	JobData
	ID        string    `json:"id"`
	Position  int       `json:"position"` // display order
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobListRequest struct {
	apimodels.Pagination
	dbmodels.JobFilter
}

type ChangePositionRequest struct {
	Position int `json:"position"` // target display position, 1-based
}

func (r ChangePositionRequest) Validate() error {
	if r.Position < 1 {
		return errors.New("position must be positive")
	}
	return nil
}

func Convert(rec dbmodels.Job) JobView {
	return JobView{
		JobData: JobData{
			Title:       rec.Title,
			Slug:        rec.Slug,
			Status:      rec.Status,
			Tags:        rec.Tags,
			Description: rec.Description,
		},
		ID:        rec.ID,
		Position:  rec.Position,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
