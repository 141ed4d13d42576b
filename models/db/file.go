package dbmodels

type FileType string

const (
	ResumeFileType FileType = "resume"
)

type FileStorage struct {
	BaseModel
	CandidateID string   `gorm:"type:varchar(36);index"`
	FileType    FileType `gorm:"type:varchar(50)"`
	Name        string   `gorm:"type:varchar(255)"`
	ContentType string   `gorm:"type:varchar(255)"`
}
