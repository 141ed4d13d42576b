package assessmentapimodels

import (
	"fmt"
	"time"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
)

type AssessmentData struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuestionData `json:"questions"`
}

func (a AssessmentData) Validate() error {
	for idx, q := range a.Questions {
		if err := q.Validate(); err != nil {
			return errors.Wrap(err, fmt.Sprintf("question %d", idx+1))
		}
	}
	return nil
}

// QuestionData carries one authored question. ID is kept when present so a
// re-save preserves conditional references; position defaults to the slice
// index when not sent.
type QuestionData struct {
	ID          string                       `json:"id,omitempty"`
	Position    *int                         `json:"position,omitempty"`
	Type        models.QuestionType          `json:"type"`
	Label       string                       `json:"label"`
	Required    bool                         `json:"required"`
	Options     dbmodels.QuestionOptions     `json:"options,omitempty"`
	Placeholder string                       `json:"placeholder,omitempty"`
	Validation  dbmodels.QuestionValidation  `json:"validation"`
	Conditional *dbmodels.QuestionCondition  `json:"conditional,omitempty"`
}

func (q QuestionData) Validate() error {
	if !q.Type.IsValid() {
		return errors.New("unknown question type")
	}
	if q.Conditional != nil && q.Conditional.DependsOn == "" {
		return errors.New("conditional question must reference another question")
	}
	return nil
}

type QuestionView struct {
	ID          string                       `json:"id"`
	Position    int                          `json:"position"`
	Type        models.QuestionType          `json:"type"`
	Label       string                       `json:"label"`
	Required    bool                         `json:"required"`
	Options     dbmodels.QuestionOptions     `json:"options,omitempty"`
	Placeholder string                       `json:"placeholder,omitempty"`
	Validation  dbmodels.QuestionValidation  `json:"validation"`
	Conditional *dbmodels.QuestionCondition  `json:"conditional,omitempty"`
}

type AssessmentView struct {
	ID          string         `json:"id"`
	JobID       string         `json:"job_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuestionView `json:"questions"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AttemptView is the candidate-facing snapshot: the question set plus the
// caller's submission state and any autosaved draft.
type AttemptView struct {
	Assessment *AssessmentView    `json:"assessment"`
	Submitted  bool               `json:"submitted"`
	Draft      dbmodels.AnswerSet `json:"draft,omitempty"`
}

type DraftRequest struct {
	Answers dbmodels.AnswerSet `json:"answers"`
}

type SubmitRequest struct {
	Answers dbmodels.AnswerSet `json:"answers"`
}

type ResponseView struct {
	ID           string             `json:"id"`
	AssessmentID string             `json:"assessment_id"`
	CandidateID  string             `json:"candidate_id"`
	Answers      dbmodels.AnswerSet `json:"answers"`
	SubmittedAt  time.Time          `json:"submitted_at"`
}

func ConvertQuestion(rec dbmodels.AssessmentQuestion) QuestionView {
	return QuestionView{
		ID:          rec.ID,
		Position:    rec.Position,
		Type:        rec.Type,
		Label:       rec.Label,
		Required:    rec.Required,
		Options:     rec.Options,
		Placeholder: rec.Placeholder,
		Validation:  rec.Validation,
		Conditional: rec.Conditional,
	}
}

func Convert(rec dbmodels.Assessment, questions []dbmodels.AssessmentQuestion) AssessmentView {
	result := AssessmentView{
		ID:          rec.ID,
		JobID:       rec.JobID,
		Title:       rec.Title,
		Description: rec.Description,
		Questions:   make([]QuestionView, 0, len(questions)),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	for _, q := range questions {
		result.Questions = append(result.Questions, ConvertQuestion(q))
	}
	return result
}

func ConvertResponse(rec dbmodels.AssessmentResponse) ResponseView {
	return ResponseView{
		ID:           rec.ID,
		AssessmentID: rec.AssessmentID,
		CandidateID:  rec.CandidateID,
		Answers:      rec.Answers,
		SubmittedAt:  rec.SubmittedAt,
	}
}
