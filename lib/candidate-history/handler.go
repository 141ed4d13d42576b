package candidatehistoryhandler

import (
	"talentflow-backend/db"
	userstore "talentflow-backend/lib/auth/store"
	candidatehistorystore "talentflow-backend/lib/candidate-history/store"
	"talentflow-backend/models"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	SaveTx(tx *gorm.DB, candidateID, userID string, fromStage, toStage models.CandidateStage, notes string) error
	Timeline(candidateID string) ([]candidateapimodels.TransitionView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     candidatehistorystore.NewInstance(db.DB),
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     candidatehistorystore.Provider
	userStore userstore.Provider
}

// SaveTx appends one audit record inside the caller's transaction. The
// acting user name is resolved up front; a missing user falls back to the
// system author rather than losing the record.
func (i impl) SaveTx(tx *gorm.DB, candidateID, userID string, fromStage, toStage models.CandidateStage, notes string) error {
	logger := log.WithField("candidate_id", candidateID).
		WithField("from_stage", fromStage).
		WithField("to_stage", toStage)
	rec := dbmodels.StageTransition{
		CandidateID: candidateID,
		FromStage:   fromStage,
		ToStage:     toStage,
		Notes:       notes,
		UserName:    models.SystemUser,
	}
	if userID != "" {
		rec.UserID = &userID
		user, err := i.userStore.GetByID(userID)
		if err != nil {
			logger.WithError(err).Error("stage history author lookup failed")
		} else if user != nil {
			rec.UserName = user.GetFullName()
		}
	}
	_, err := i.store.CreateTx(tx, rec)
	if err != nil {
		logger.WithError(err).Error("stage history write failed")
		return err
	}
	return nil
}

func (i impl) Timeline(candidateID string) ([]candidateapimodels.TransitionView, error) {
	list, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		log.WithError(err).WithField("candidate_id", candidateID).Error("stage history query failed")
		return nil, err
	}
	result := make([]candidateapimodels.TransitionView, 0, len(list))
	for _, rec := range list {
		result = append(result, candidateapimodels.ConvertTransition(rec))
	}
	return result, nil
}
