package candidatehandler

import (
	"talentflow-backend/db"
	userstore "talentflow-backend/lib/auth/store"
	candidatehistoryhandler "talentflow-backend/lib/candidate-history"
	notestore "talentflow-backend/lib/candidate/note-store"
	candidatestore "talentflow-backend/lib/candidate/store"
	jobstore "talentflow-backend/lib/job/store"
	"talentflow-backend/lib/utils/helpers"
	"talentflow-backend/models"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(userID string, data candidateapimodels.CandidateData) (id string, hMsg string, err error)
	Apply(userID, jobID string, data candidateapimodels.ApplyRequest) (id string, hMsg string, err error)
	GetByID(id string) (*candidateapimodels.CandidateView, error)
	Update(id string, data candidateapimodels.CandidateData) (hMsg string, err error)
	List(filter dbmodels.CandidateFilter, page, limit int) ([]candidateapimodels.CandidateView, int64, error)
	ListByUser(userID string) ([]candidateapimodels.CandidateView, error)
	ChangeStage(id, userID string, req candidateapimodels.ChangeStageRequest) (hMsg string, err error)
	Timeline(id string) ([]candidateapimodels.TransitionView, error)
	AddNote(id, userID string, req candidateapimodels.NoteRequest) (hMsg string, err error)
	Notes(id string) ([]candidateapimodels.NoteView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     candidatestore.NewInstance(db.DB),
		jobStore:  jobstore.NewInstance(db.DB),
		noteStore: notestore.NewInstance(db.DB),
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     candidatestore.Provider
	jobStore  jobstore.Provider
	noteStore notestore.Provider
	userStore userstore.Provider
}

// Create registers a candidate entered by a recruiter. The stage always
// starts at applied; the matching applied->applied transition marks the
// application itself and is written in the same transaction.
func (i impl) Create(userID string, data candidateapimodels.CandidateData) (string, string, error) {
	job, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		return "", "", errors.Wrap(err, "job lookup failed")
	}
	if job == nil {
		return "", "job not found", nil
	}
	return i.create(userID, nil, data)
}

// Apply registers a self-service application by the acting user for an
// active job.
func (i impl) Apply(userID, jobID string, data candidateapimodels.ApplyRequest) (string, string, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return "", "", errors.Wrap(err, "job lookup failed")
	}
	if job == nil {
		return "", "job not found", nil
	}
	if job.Status != models.JobStatusActive {
		return "", "this job is no longer accepting applications", nil
	}
	existing, err := i.store.GetByUserAndJob(userID, jobID)
	if err != nil {
		return "", "", errors.Wrap(err, "application lookup failed")
	}
	if existing != nil {
		return "", "you have already applied to this job", nil
	}
	return i.create(userID, &userID, candidateapimodels.CandidateData{
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		JobID:      jobID,
		ResumeLink: data.ResumeLink,
	})
}

func (i impl) create(actingUserID string, ownerUserID *string, data candidateapimodels.CandidateData) (string, string, error) {
	rec := dbmodels.Candidate{
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		JobID:      data.JobID,
		Stage:      models.StageApplied,
		UserID:     ownerUserID,
		ResumeLink: data.ResumeLink,
	}
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(&rec).Error; err != nil {
			return err
		}
		return candidatehistoryhandler.Instance.SaveTx(tx, rec.ID, actingUserID,
			models.StageApplied, models.StageApplied, "Application submitted")
	})
	if err != nil {
		return "", "", errors.Wrap(err, "application save failed")
	}
	return rec.ID, "", nil
}

func (i impl) GetByID(id string) (*candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "candidate lookup failed")
	}
	if rec == nil {
		return nil, nil
	}
	view := candidateapimodels.Convert(*rec)
	return &view, nil
}

// Update touches contact fields only; the stage is never written here, only
// through ChangeStage so the audit trail stays complete.
func (i impl) Update(id string, data candidateapimodels.CandidateData) (string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "candidate lookup failed")
	}
	if rec == nil {
		return "candidate not found", nil
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"email":       data.Email,
		"phone":       data.Phone,
		"resume_link": data.ResumeLink,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "candidate update failed")
	}
	return "", nil
}

func (i impl) List(filter dbmodels.CandidateFilter, page, limit int) ([]candidateapimodels.CandidateView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []candidateapimodels.CandidateView{}, rowCount, nil
	}
	list, err := i.store.List(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ListByUser(userID string) ([]candidateapimodels.CandidateView, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("application list query failed")
		return nil, errors.New("application list query failed")
	}
	result := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.Convert(rec))
	}
	return result, nil
}

// ChangeStage is the only way a candidate's stage moves. The stage field
// update and the transition record commit together or not at all.
func (i impl) ChangeStage(id, userID string, req candidateapimodels.ChangeStageRequest) (string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "candidate lookup failed")
	}
	if rec == nil {
		return "candidate not found", nil
	}
	if rec.Stage == req.Stage {
		return "candidate is already at this stage", nil
	}
	fromStage := rec.Stage
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		upd := tx.Model(&dbmodels.Candidate{}).
			Where("id = ?", id).
			Where("stage = ?", fromStage).
			Update("stage", req.Stage)
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return errors.New("candidate stage changed concurrently")
		}
		return candidatehistoryhandler.Instance.SaveTx(tx, id, userID, fromStage, req.Stage, req.Notes)
	})
	if err != nil {
		return "", errors.Wrap(err, "stage change failed")
	}
	return "", nil
}

func (i impl) Timeline(id string) ([]candidateapimodels.TransitionView, error) {
	return candidatehistoryhandler.Instance.Timeline(id)
}

func (i impl) AddNote(id, userID string, req candidateapimodels.NoteRequest) (string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "candidate lookup failed")
	}
	if rec == nil {
		return "candidate not found", nil
	}
	note := dbmodels.CandidateNote{
		CandidateID: id,
		Content:     req.Content,
		Mentions:    helpers.ExtractMentions(req.Content),
		AuthorName:  models.SystemUser,
	}
	if userID != "" {
		note.AuthorID = &userID
		user, err := i.userStore.GetByID(userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("note author lookup failed")
		} else if user != nil {
			note.AuthorName = user.GetFullName()
		}
	}
	_, err = i.noteStore.Create(note)
	if err != nil {
		return "", errors.Wrap(err, "note save failed")
	}
	return "", nil
}

func (i impl) Notes(id string) ([]candidateapimodels.NoteView, error) {
	list, err := i.noteStore.ListByCandidate(id)
	if err != nil {
		log.WithError(err).WithField("candidate_id", id).Error("note list query failed")
		return nil, errors.New("note list query failed")
	}
	result := make([]candidateapimodels.NoteView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.ConvertNote(rec))
	}
	return result, nil
}
