package assessmenthandler

import (
	"bytes"

	"talentflow-backend/db"
	questionstore "talentflow-backend/lib/assessment/question-store"
	responsestore "talentflow-backend/lib/assessment/response-store"
	assessmentstore "talentflow-backend/lib/assessment/store"
	xlsexport "talentflow-backend/lib/export/xls"
	jobstore "talentflow-backend/lib/job/store"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Save(jobID string, data assessmentapimodels.AssessmentData) (*assessmentapimodels.AssessmentView, string, error)
	GetByJobID(jobID string) (*assessmentapimodels.AssessmentView, error)
	Submissions(assessmentID string) ([]assessmentapimodels.ResponseView, string, error)
	ExportSubmissions(assessmentID string) (*bytes.Buffer, string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         assessmentstore.NewInstance(db.DB),
		questionStore: questionstore.NewInstance(db.DB),
		responseStore: responsestore.NewInstance(db.DB),
		jobStore:      jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         assessmentstore.Provider
	questionStore questionstore.Provider
	responseStore responsestore.Provider
	jobStore      jobstore.Provider
}

// Save is idempotent per job: the title and description are replaced and
// the question set is swapped wholesale for the normalized incoming list.
func (i impl) Save(jobID string, data assessmentapimodels.AssessmentData) (*assessmentapimodels.AssessmentView, string, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, "", errors.Wrap(err, "job lookup failed")
	}
	if job == nil {
		return nil, "job not found", nil
	}
	title := data.Title
	if title == "" {
		title = "Assessment for " + job.Title
	}
	rec := dbmodels.Assessment{
		JobID:       jobID,
		Title:       title,
		Description: data.Description,
	}
	questions := normalizeQuestions(data.Questions)
	id, err := i.store.SaveWithQuestions(rec, questions)
	if err != nil {
		return nil, "", errors.Wrap(err, "assessment save failed")
	}
	return i.getView(id)
}

func (i impl) GetByJobID(jobID string) (*assessmentapimodels.AssessmentView, error) {
	rec, err := i.store.GetByJobID(jobID)
	if err != nil {
		return nil, errors.Wrap(err, "assessment lookup failed")
	}
	if rec == nil {
		return nil, nil
	}
	view, _, err := i.getView(rec.ID)
	return view, err
}

func (i impl) getView(id string) (*assessmentapimodels.AssessmentView, string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, "", errors.Wrap(err, "assessment lookup failed")
	}
	if rec == nil {
		return nil, "assessment not found", nil
	}
	questions, err := i.questionStore.ListByAssessment(id)
	if err != nil {
		return nil, "", errors.Wrap(err, "question list query failed")
	}
	view := assessmentapimodels.Convert(*rec, questions)
	return &view, "", nil
}

func (i impl) Submissions(assessmentID string) ([]assessmentapimodels.ResponseView, string, error) {
	rec, err := i.store.GetByID(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "assessment lookup failed")
	}
	if rec == nil {
		return nil, "assessment not found", nil
	}
	list, err := i.responseStore.ListByAssessment(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "submission list query failed")
	}
	result := make([]assessmentapimodels.ResponseView, 0, len(list))
	for _, item := range list {
		result = append(result, assessmentapimodels.ConvertResponse(item))
	}
	return result, "", nil
}

func (i impl) ExportSubmissions(assessmentID string) (*bytes.Buffer, string, error) {
	rec, err := i.store.GetByID(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "assessment lookup failed")
	}
	if rec == nil {
		return nil, "assessment not found", nil
	}
	questions, err := i.questionStore.ListByAssessment(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "question list query failed")
	}
	list, err := i.responseStore.ListByAssessment(assessmentID)
	if err != nil {
		return nil, "", errors.Wrap(err, "submission list query failed")
	}
	buf, err := xlsexport.Instance.ExportSubmissionList(*rec, questions, list)
	if err != nil {
		return nil, "", err
	}
	return buf, "", nil
}
