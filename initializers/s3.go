package initializers

import (
	"context"

	s3client "talentflow-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	if err := s3client.Connect(); err != nil {
		log.WithError(err).Error("failed to initialize s3 client")
		return
	}
	if err := s3client.EnsureBucket(context.Background()); err != nil {
		log.WithError(err).Error("s3 connection check failed")
		return
	}
	log.Info("s3 client initialized")
}
