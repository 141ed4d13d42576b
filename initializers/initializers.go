package initializers

import (
	"context"

	"talentflow-backend/config"
	"talentflow-backend/fiberlog"
	assessmenthandler "talentflow-backend/lib/assessment"
	"talentflow-backend/lib/assessment/attempt"
	authhandler "talentflow-backend/lib/auth"
	candidatehandler "talentflow-backend/lib/candidate"
	candidatehistoryhandler "talentflow-backend/lib/candidate-history"
	xlsexport "talentflow-backend/lib/export/xls"
	filestorage "talentflow-backend/lib/file-storage"
	jobhandler "talentflow-backend/lib/job"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	authhandler.NewHandler()
	jobhandler.NewHandler()
	candidatehistoryhandler.NewHandler()
	candidatehandler.NewHandler()
	filestorage.NewHandler()
	xlsexport.NewHandler()
	assessmenthandler.NewHandler()
	attempt.NewHandler()
	if err := authhandler.Instance.EnsureAdmin(); err != nil {
		log.WithError(err).Error("failed to seed admin account")
	}
}
