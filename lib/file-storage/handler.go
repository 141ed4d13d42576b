package filestorage

import (
	"context"
	"fmt"

	"talentflow-backend/db"
	candidatestore "talentflow-backend/lib/candidate/store"
	filestore "talentflow-backend/lib/file-storage/store"
	"talentflow-backend/lib/file-storage/storage"
	dbmodels "talentflow-backend/models/db"
	s3client "talentflow-backend/s3"

	"github.com/pkg/errors"
)

type Provider interface {
	UploadResume(ctx context.Context, candidateID, fileName, contentType string, data []byte) (hMsg string, err error)
	GetResume(ctx context.Context, candidateID string) (rec *dbmodels.FileStorage, data []byte, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		storage:        storage.NewInstance(s3client.Client),
		fileStore:      filestore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	storage        storage.Provider
	fileStore      filestore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) UploadResume(ctx context.Context, candidateID, fileName, contentType string, data []byte) (string, error) {
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil {
		return "", errors.Wrap(err, "candidate lookup failed")
	}
	if candidate == nil {
		return "candidate not found", nil
	}
	if len(data) == 0 {
		return "file is empty", nil
	}
	objectName := resumeObjectName(candidateID)
	if err := i.storage.Upload(ctx, objectName, contentType, data); err != nil {
		return "", errors.Wrap(err, "resume upload failed")
	}
	rec := dbmodels.FileStorage{
		CandidateID: candidateID,
		FileType:    dbmodels.ResumeFileType,
		Name:        fileName,
		ContentType: contentType,
	}
	if _, err := i.fileStore.Save(rec); err != nil {
		return "", errors.Wrap(err, "resume record save failed")
	}
	return "", nil
}

func (i impl) GetResume(ctx context.Context, candidateID string) (*dbmodels.FileStorage, []byte, string, error) {
	rec, err := i.fileStore.GetByCandidateAndType(candidateID, dbmodels.ResumeFileType)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "resume record lookup failed")
	}
	if rec == nil {
		return nil, nil, "resume not found", nil
	}
	data, err := i.storage.Download(ctx, resumeObjectName(candidateID))
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "resume download failed")
	}
	return rec, data, "", nil
}

func resumeObjectName(candidateID string) string {
	return fmt.Sprintf("resume/%s", candidateID)
}
