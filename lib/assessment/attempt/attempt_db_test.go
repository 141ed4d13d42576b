package attempt

import (
	"context"
	"testing"

	"talentflow-backend/db"
	assessmenthandler "talentflow-backend/lib/assessment"
	candidatehandler "talentflow-backend/lib/candidate"
	candidatehistoryhandler "talentflow-backend/lib/candidate-history"
	jobhandler "talentflow-backend/lib/job"
	"talentflow-backend/models"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	candidateapimodels "talentflow-backend/models/api/candidate"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAttemptFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	terminate, err := db.ConnectTest()
	require.NoError(t, err)
	t.Cleanup(func() {
		if terminate != nil {
			_ = terminate(context.Background())
		}
	})

	jobhandler.NewHandler()
	candidatehistoryhandler.NewHandler()
	candidatehandler.NewHandler()
	assessmenthandler.NewHandler()
	NewHandler()

	jobID, hMsg, err := jobhandler.Instance.Create(jobapimodels.JobData{
		Title: "Senior Go Developer",
		Tags:  []string{"go", "backend"},
	})
	require.NoError(t, err)
	require.Empty(t, hMsg)
	require.NotEmpty(t, jobID)

	t.Run(`slug is derived and re-checked for uniqueness`, func(t *testing.T) {
		job, err := jobhandler.Instance.GetByID(jobID)
		require.NoError(t, err)
		require.Equal(t, "senior-go-developer", job.Slug)

		_, hMsg, err := jobhandler.Instance.Create(jobapimodels.JobData{
			Title: "Senior Go Developer!!",
		})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`assessment save replaces the question set wholesale`, func(t *testing.T) {
		first, hMsg, err := assessmenthandler.Instance.Save(jobID, assessmentapimodels.AssessmentData{
			Title: "Screening",
			Questions: []assessmentapimodels.QuestionData{
				{Type: models.QuestionShortText, Label: "Old question A"},
				{Type: models.QuestionShortText, Label: "Old question B"},
				{Type: models.QuestionShortText, Label: "Old question C"},
			},
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Len(t, first.Questions, 3)

		second, hMsg, err := assessmenthandler.Instance.Save(jobID, assessmentapimodels.AssessmentData{
			Title: "Screening",
			Questions: []assessmentapimodels.QuestionData{
				{Type: models.QuestionShortText, Label: "New question", Required: true},
			},
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, first.ID, second.ID)
		require.Len(t, second.Questions, 1)
		require.Equal(t, "New question", second.Questions[0].Label)
	})

	t.Run(`apply records the candidate with an applied transition`, func(t *testing.T) {
		userID := uuid.NewString()
		candidateID, hMsg, err := candidatehandler.Instance.Apply(userID, jobID, candidateapimodels.ApplyRequest{
			Name:  "Jordan Lee",
			Email: "jordan@example.com",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		timeline, err := candidatehandler.Instance.Timeline(candidateID)
		require.NoError(t, err)
		require.Len(t, timeline, 1)
		require.Equal(t, models.StageApplied, timeline[0].ToStage)

		_, hMsg, err = candidatehandler.Instance.Apply(userID, jobID, candidateapimodels.ApplyRequest{
			Name:  "Jordan Lee",
			Email: "jordan@example.com",
		})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`draft survives until submit`, func(t *testing.T) {
		userID := uuid.NewString()
		hMsg, err := Instance.SaveDraft(userID, jobID, dbmodels.AnswerSet{})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		snapshot, hMsg, err := Instance.Snapshot(userID, jobID)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.False(t, snapshot.Submitted)
		require.NotNil(t, snapshot.Draft)

		questionID := snapshot.Assessment.Questions[0].ID
		answers := dbmodels.AnswerSet{questionID: "my answer"}

		resp, hMsg, err := Instance.Submit(userID, jobID, answers)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, userID, resp.CandidateID)

		snapshot, hMsg, err = Instance.Snapshot(userID, jobID)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.True(t, snapshot.Submitted)
		require.Nil(t, snapshot.Draft)
	})

	t.Run(`second submission is rejected`, func(t *testing.T) {
		userID := uuid.NewString()
		snapshot, hMsg, err := Instance.Snapshot(userID, jobID)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		questionID := snapshot.Assessment.Questions[0].ID
		answers := dbmodels.AnswerSet{questionID: "first"}

		_, hMsg, err = Instance.Submit(userID, jobID, answers)
		require.NoError(t, err)
		require.Empty(t, hMsg)

		_, hMsg, err = Instance.Submit(userID, jobID, answers)
		require.NoError(t, err)
		require.Equal(t, "You have already submitted this assessment", hMsg)
	})

	t.Run(`submit enforces required answers`, func(t *testing.T) {
		userID := uuid.NewString()
		_, hMsg, err := Instance.Submit(userID, jobID, dbmodels.AnswerSet{})
		require.NoError(t, err)
		require.Equal(t, "Please answer: New question", hMsg)
	})

	t.Run(`change stage appends a transition and rejects a stale move`, func(t *testing.T) {
		userID := uuid.NewString()
		adminID := uuid.NewString()
		candidateID, hMsg, err := candidatehandler.Instance.Apply(userID, jobID, candidateapimodels.ApplyRequest{
			Name:  "Sam Chen",
			Email: "sam@example.com",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		hMsg, err = candidatehandler.Instance.ChangeStage(candidateID, adminID, candidateapimodels.ChangeStageRequest{
			Stage: models.StageScreen,
			Notes: "phone screen booked",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		hMsg, err = candidatehandler.Instance.ChangeStage(candidateID, adminID, candidateapimodels.ChangeStageRequest{
			Stage: models.StageScreen,
		})
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)

		timeline, err := candidatehandler.Instance.Timeline(candidateID)
		require.NoError(t, err)
		require.Len(t, timeline, 2)
		require.Equal(t, models.StageApplied, timeline[1].FromStage)
		require.Equal(t, models.StageScreen, timeline[1].ToStage)
	})
}
