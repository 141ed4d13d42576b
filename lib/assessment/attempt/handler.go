package attempt

import (
	"time"

	"talentflow-backend/db"
	draftstore "talentflow-backend/lib/assessment/draft-store"
	questionstore "talentflow-backend/lib/assessment/question-store"
	responsestore "talentflow-backend/lib/assessment/response-store"
	assessmentstore "talentflow-backend/lib/assessment/store"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Snapshot(userID, jobID string) (*assessmentapimodels.AttemptView, string, error)
	SaveDraft(userID, jobID string, answers dbmodels.AnswerSet) (hMsg string, err error)
	ClearDraft(userID, jobID string) (hMsg string, err error)
	Submit(userID, jobID string, answers dbmodels.AnswerSet) (*assessmentapimodels.ResponseView, string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:            db.DB,
		store:         assessmentstore.NewInstance(db.DB),
		questionStore: questionstore.NewInstance(db.DB),
		responseStore: responsestore.NewInstance(db.DB),
		draftStore:    draftstore.NewInstance(db.DB),
	}
}

type impl struct {
	db            *gorm.DB
	store         assessmentstore.Provider
	questionStore questionstore.Provider
	responseStore responsestore.Provider
	draftStore    draftstore.Provider
}

// Snapshot returns everything the candidate needs to render the form: the
// current question set, whether they already submitted, and their draft.
func (i impl) Snapshot(userID, jobID string) (*assessmentapimodels.AttemptView, string, error) {
	rec, err := i.store.GetByJobID(jobID)
	if err != nil {
		return nil, "", errors.Wrap(err, "assessment lookup failed")
	}
	if rec == nil {
		return nil, "no assessment for this job", nil
	}
	questions, err := i.questionStore.ListByAssessment(rec.ID)
	if err != nil {
		return nil, "", errors.Wrap(err, "question list query failed")
	}
	view := assessmentapimodels.Convert(*rec, questions)
	result := assessmentapimodels.AttemptView{
		Assessment: &view,
	}
	response, err := i.responseStore.GetByAssessmentAndCandidate(rec.ID, userID)
	if err != nil {
		return nil, "", errors.Wrap(err, "submission lookup failed")
	}
	result.Submitted = response != nil
	draft, err := i.draftStore.Get(userID, jobID)
	if err != nil {
		return nil, "", errors.Wrap(err, "draft lookup failed")
	}
	if draft != nil {
		result.Draft = draft.Answers
	}
	return &result, "", nil
}

func (i impl) SaveDraft(userID, jobID string, answers dbmodels.AnswerSet) (string, error) {
	rec, err := i.store.GetByJobID(jobID)
	if err != nil {
		return "", errors.Wrap(err, "assessment lookup failed")
	}
	if rec == nil {
		return "no assessment for this job", nil
	}
	response, err := i.responseStore.GetByAssessmentAndCandidate(rec.ID, userID)
	if err != nil {
		return "", errors.Wrap(err, "submission lookup failed")
	}
	if response != nil {
		return "You have already submitted this assessment", nil
	}
	if err := i.draftStore.Upsert(userID, jobID, answers); err != nil {
		return "", errors.Wrap(err, "draft save failed")
	}
	return "", nil
}

func (i impl) ClearDraft(userID, jobID string) (string, error) {
	if err := i.draftStore.Delete(userID, jobID); err != nil {
		return "", errors.Wrap(err, "draft delete failed")
	}
	return "", nil
}

// Submit validates the answers against the visible questions and writes the
// response and the draft cleanup in one transaction. The unique index backs
// up the fast-path "already submitted" check against concurrent submits.
func (i impl) Submit(userID, jobID string, answers dbmodels.AnswerSet) (*assessmentapimodels.ResponseView, string, error) {
	rec, err := i.store.GetByJobID(jobID)
	if err != nil {
		return nil, "", errors.Wrap(err, "assessment lookup failed")
	}
	if rec == nil {
		return nil, "no assessment for this job", nil
	}
	existing, err := i.responseStore.GetByAssessmentAndCandidate(rec.ID, userID)
	if err != nil {
		return nil, "", errors.Wrap(err, "submission lookup failed")
	}
	if existing != nil {
		return nil, "You have already submitted this assessment", nil
	}
	questions, err := i.questionStore.ListByAssessment(rec.ID)
	if err != nil {
		return nil, "", errors.Wrap(err, "question list query failed")
	}
	if answers == nil {
		answers = dbmodels.AnswerSet{}
	}
	if msg := ValidateAnswers(questions, answers); msg != "" {
		return nil, msg, nil
	}
	response := dbmodels.AssessmentResponse{
		AssessmentID: rec.ID,
		CandidateID:  userID,
		JobID:        jobID,
		Answers:      answers,
		SubmittedAt:  time.Now(),
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		id, err := i.responseStore.CreateTx(tx, response)
		if err != nil {
			return err
		}
		response.ID = id
		return i.draftStore.DeleteTx(tx, userID, jobID)
	})
	if err != nil {
		if errors.Is(err, responsestore.ErrDuplicateSubmission) {
			return nil, "You have already submitted this assessment", nil
		}
		return nil, "", errors.Wrap(err, "submission save failed")
	}
	view := assessmentapimodels.ConvertResponse(response)
	return &view, "", nil
}
