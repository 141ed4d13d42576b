package candidateapimodels

import (
	"strings"
	"time"

	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
)

type CandidateData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	JobID      string `json:"job_id"`
	ResumeLink string `json:"resume_link"`
}

func (c CandidateData) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return errors.New("email is required")
	}
	if c.JobID == "" {
		return errors.New("job is not specified")
	}
	return nil
}

// ApplyRequest is the candidate-facing application payload; the job comes
// from the route and the user from the session claims.
type ApplyRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumeLink string `json:"resume_link"`
}

func (a ApplyRequest) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return errors.New("email is required")
	}
	return nil
}

type CandidateView struct {
	CandidateData
	ID        string                `json:"id"`
	Stage     models.CandidateStage `json:"stage"`
	StageName string                `json:"stage_name"`
	JobTitle  string                `json:"job_title"`
	UserID    string                `json:"user_id,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type CandidateListRequest struct {
	apimodels.Pagination
	dbmodels.CandidateFilter
}

type ChangeStageRequest struct {
	Stage models.CandidateStage `json:"stage"`
	Notes string                `json:"notes"`
}

func (r ChangeStageRequest) Validate() error {
	if !r.Stage.IsValid() {
		return errors.New("unknown pipeline stage")
	}
	return nil
}

type TransitionView struct {
	ID        string                `json:"id"`
	FromStage models.CandidateStage `json:"from_stage"`
	ToStage   models.CandidateStage `json:"to_stage"`
	UserName  string                `json:"user_name"`
	Notes     string                `json:"notes"`
	Timestamp time.Time             `json:"timestamp"`
}

type NoteRequest struct {
	Content string `json:"content"`
}

func (r NoteRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("note content is required")
	}
	return nil
}

type NoteView struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Mentions   []string  `json:"mentions"`
	CreatedAt  time.Time `json:"created_at"`
}

func Convert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		CandidateData: CandidateData{
			Name:       rec.Name,
			Email:      rec.Email,
			Phone:      rec.Phone,
			JobID:      rec.JobID,
			ResumeLink: rec.ResumeLink,
		},
		ID:        rec.ID,
		Stage:     rec.Stage,
		StageName: rec.Stage.ToHuman(),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	return result
}

func ConvertTransition(rec dbmodels.StageTransition) TransitionView {
	return TransitionView{
		ID:        rec.ID,
		FromStage: rec.FromStage,
		ToStage:   rec.ToStage,
		UserName:  rec.UserName,
		Notes:     rec.Notes,
		Timestamp: rec.CreatedAt,
	}
}

func ConvertNote(rec dbmodels.CandidateNote) NoteView {
	mentions := rec.Mentions
	if mentions == nil {
		mentions = []string{}
	}
	return NoteView{
		ID:         rec.ID,
		AuthorName: rec.AuthorName,
		Content:    rec.Content,
		Mentions:   mentions,
		CreatedAt:  rec.CreatedAt,
	}
}
