package responsestore

import (
	"strings"

	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrDuplicateSubmission maps the unique (assessment_id, candidate_id)
// index violation; the caller turns it into an "already submitted" message.
var ErrDuplicateSubmission = errors.New("submission already exists")

type Provider interface {
	CreateTx(tx *gorm.DB, rec dbmodels.AssessmentResponse) (id string, err error)
	GetByAssessmentAndCandidate(assessmentID, candidateID string) (rec *dbmodels.AssessmentResponse, err error)
	ListByAssessment(assessmentID string) (list []dbmodels.AssessmentResponse, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateTx(tx *gorm.DB, rec dbmodels.AssessmentResponse) (id string, err error) {
	err = tx.
		Create(&rec).
		Error
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateSubmission
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByAssessmentAndCandidate(assessmentID, candidateID string) (*dbmodels.AssessmentResponse, error) {
	rec := dbmodels.AssessmentResponse{}
	err := i.db.
		Where("assessment_id = ?", assessmentID).
		Where("candidate_id = ?", candidateID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByAssessment(assessmentID string) (list []dbmodels.AssessmentResponse, err error) {
	list = []dbmodels.AssessmentResponse{}
	err = i.db.
		Model(dbmodels.AssessmentResponse{}).
		Where("assessment_id = ?", assessmentID).
		Order("submitted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pq/pgx unique_violation (SQLSTATE 23505)
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
