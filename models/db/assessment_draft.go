package dbmodels

// AssessmentDraft is the autosaved in-progress answer set, one slot per
// user and job so concurrent drafts never collide.
type AssessmentDraft struct {
	BaseModel
	UserID  string    `gorm:"type:varchar(36);uniqueIndex:idx_draft_user_job"`
	JobID   string    `gorm:"type:varchar(36);uniqueIndex:idx_draft_user_job"`
	Answers AnswerSet `gorm:"type:jsonb"`
}
