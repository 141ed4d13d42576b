package authhandler

import (
	"strings"

	"talentflow-backend/config"
	"talentflow-backend/db"
	userstore "talentflow-backend/lib/auth/store"
	authhelpers "talentflow-backend/lib/utils/auth-helpers"
	authutils "talentflow-backend/lib/utils/auth-utils"
	"talentflow-backend/models"
	authapimodels "talentflow-backend/models/api/auth"
	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Signup(req authapimodels.SignupRequest) (response authapimodels.JWTResponse, hMsg string, err error)
	Login(email, password string) (response authapimodels.JWTResponse, hMsg string, err error)
	EnsureAdmin() error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Signup(req authapimodels.SignupRequest) (authapimodels.JWTResponse, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	logger := log.WithField("email", email)
	exist, err := i.store.ExistByEmail(email)
	if err != nil {
		logger.WithError(err).Error("signup email check failed")
		return authapimodels.JWTResponse{}, "", errors.Wrap(err, "signup email check failed")
	}
	if exist {
		return authapimodels.JWTResponse{}, "email already registered", nil
	}
	firstName, lastName := splitName(req.Name)
	rec := dbmodels.User{
		Email:     email,
		Password:  authhelpers.GetMD5Hash(req.Password),
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.CandidateRole,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("user creation failed")
		return authapimodels.JWTResponse{}, "", errors.Wrap(err, "user creation failed")
	}
	token, err := authutils.GetToken(id, rec.GetFullName(), rec.Role)
	if err != nil {
		logger.WithError(err).Error("JWT generation failed")
		return authapimodels.JWTResponse{}, "", err
	}
	return authapimodels.JWTResponse{Token: token}, "", nil
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return authapimodels.JWTResponse{}, "", err
	}
	if user == nil {
		logger.Debug("no user with this email")
		return authapimodels.JWTResponse{}, "invalid email or password", nil
	}
	if authhelpers.GetMD5Hash(password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, "invalid email or password", nil
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("JWT generation failed")
		return authapimodels.JWTResponse{}, "", err
	}
	return authapimodels.JWTResponse{Token: token}, "", nil
}

// EnsureAdmin seeds the configured recruiter account on first start.
func (i impl) EnsureAdmin() error {
	email := strings.ToLower(config.Conf.Auth.AdminEmail)
	exist, err := i.store.ExistByEmail(email)
	if err != nil {
		return errors.Wrap(err, "admin lookup failed")
	}
	if exist {
		return nil
	}
	rec := dbmodels.User{
		Email:     email,
		Password:  authhelpers.GetMD5Hash(config.Conf.Auth.AdminPassword),
		FirstName: "Admin",
		Role:      models.AdminRole,
	}
	_, err = i.store.Create(rec)
	if err != nil {
		return errors.Wrap(err, "admin creation failed")
	}
	log.WithField("email", email).Info("admin account created")
	return nil
}

func splitName(name string) (firstName, lastName string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	firstName = parts[0]
	lastName = strings.Join(parts[1:], " ")
	return firstName, lastName
}
