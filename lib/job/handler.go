package jobhandler

import (
	"talentflow-backend/db"
	jobstore "talentflow-backend/lib/job/store"
	"talentflow-backend/lib/utils/helpers"
	"talentflow-backend/models"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data jobapimodels.JobData) (id string, hMsg string, err error)
	Update(id string, data jobapimodels.JobData) (hMsg string, err error)
	GetByID(id string) (*jobapimodels.JobView, error)
	GetBySlug(slug string) (*jobapimodels.JobView, error)
	Delete(id string) error
	List(filter dbmodels.JobFilter, page, limit int) ([]jobapimodels.JobView, int64, error)
	ChangePosition(id string, target int) (hMsg string, err error)
	SetStatus(id string, status models.JobStatus) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.JobData) (string, string, error) {
	slug := data.Slug
	if slug == "" {
		slug = helpers.Slugify(data.Title)
	}
	if slug == "" {
		return "", "a slug could not be derived from the title", nil
	}
	existing, err := i.store.GetBySlug(slug)
	if err != nil {
		return "", "", errors.Wrap(err, "slug lookup failed")
	}
	if existing != nil {
		return "", "a job with this slug already exists", nil
	}
	maxPos, err := i.store.MaxPosition()
	if err != nil {
		return "", "", errors.Wrap(err, "position lookup failed")
	}
	status := data.Status
	if status == "" {
		status = models.JobStatusActive
	}
	rec := dbmodels.Job{
		Title:       data.Title,
		Slug:        slug,
		Status:      status,
		Tags:        data.Tags,
		Position:    maxPos + 1,
		Description: data.Description,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "job creation failed")
	}
	return id, "", nil
}

func (i impl) Update(id string, data jobapimodels.JobData) (string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "job lookup failed")
	}
	if rec == nil {
		return "job not found", nil
	}
	slug := data.Slug
	if slug == "" {
		slug = rec.Slug
	}
	if slug != rec.Slug {
		existing, err := i.store.GetBySlug(slug)
		if err != nil {
			return "", errors.Wrap(err, "slug lookup failed")
		}
		if existing != nil && existing.ID != id {
			return "a job with this slug already exists", nil
		}
	}
	updMap := map[string]interface{}{
		"title":       data.Title,
		"slug":        slug,
		"tags":        pq.StringArray(data.Tags),
		"description": data.Description,
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "job update failed")
	}
	return "", nil
}

func (i impl) GetByID(id string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "job lookup failed")
	}
	if rec == nil {
		return nil, nil
	}
	view := jobapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) GetBySlug(slug string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetBySlug(slug)
	if err != nil {
		return nil, errors.Wrap(err, "job lookup failed")
	}
	if rec == nil {
		return nil, nil
	}
	view := jobapimodels.Convert(*rec)
	return &view, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		log.WithError(err).WithField("job_id", id).Error("job deletion failed")
		return errors.New("job deletion failed")
	}
	return nil
}

func (i impl) List(filter dbmodels.JobFilter, page, limit int) ([]jobapimodels.JobView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []jobapimodels.JobView{}, rowCount, nil
	}
	list, err := i.store.List(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ChangePosition(id string, target int) (string, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "job lookup failed")
	}
	if rec == nil {
		return "job not found", nil
	}
	err = i.store.MoveToPosition(id, target)
	if err != nil {
		return "", errors.Wrap(err, "job reorder failed")
	}
	return "", nil
}

func (i impl) SetStatus(id string, status models.JobStatus) (string, error) {
	if !status.IsValid() {
		return "unknown job status", nil
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", errors.Wrap(err, "job lookup failed")
	}
	if rec == nil {
		return "job not found", nil
	}
	err = i.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return "", errors.Wrap(err, "job status update failed")
	}
	return "", nil
}
