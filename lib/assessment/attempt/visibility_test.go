package attempt

import (
	"testing"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"

	"github.com/stretchr/testify/require"
)

func question(id string, position int, conditional *dbmodels.QuestionCondition) dbmodels.AssessmentQuestion {
	q := dbmodels.AssessmentQuestion{
		Position:    position,
		Type:        models.QuestionShortText,
		Label:       "Q " + id,
		Conditional: conditional,
	}
	q.ID = id
	return q
}

func TestVisible(t *testing.T) {
	t.Run(`no conditional is always visible`, func(t *testing.T) {
		q := question("q1", 0, nil)
		require.True(t, Visible(q, dbmodels.AnswerSet{}))
		require.True(t, Visible(q, nil))
	})

	t.Run(`equals matches the dependency answer`, func(t *testing.T) {
		q := question("q2", 1, &dbmodels.QuestionCondition{
			DependsOn: "q1",
			Condition: "equals",
			Value:     "yes",
		})
		require.True(t, Visible(q, dbmodels.AnswerSet{"q1": "yes"}))
		require.False(t, Visible(q, dbmodels.AnswerSet{"q1": "no"}))
		require.False(t, Visible(q, dbmodels.AnswerSet{}))
	})

	t.Run(`equals is type sensitive`, func(t *testing.T) {
		q := question("q2", 1, &dbmodels.QuestionCondition{
			DependsOn: "q1",
			Condition: "equals",
			Value:     float64(1),
		})
		require.True(t, Visible(q, dbmodels.AnswerSet{"q1": float64(1)}))
		// string "1" must not match numeric 1
		require.False(t, Visible(q, dbmodels.AnswerSet{"q1": "1"}))
	})

	t.Run(`nil value matches an absent answer`, func(t *testing.T) {
		q := question("q2", 1, &dbmodels.QuestionCondition{
			DependsOn: "q1",
			Condition: "equals",
			Value:     nil,
		})
		require.True(t, Visible(q, dbmodels.AnswerSet{}))
		require.False(t, Visible(q, dbmodels.AnswerSet{"q1": "anything"}))
	})

	t.Run(`unknown condition keyword keeps the question visible`, func(t *testing.T) {
		q := question("q2", 1, &dbmodels.QuestionCondition{
			DependsOn: "q1",
			Condition: "greater_than",
			Value:     "yes",
		})
		require.True(t, Visible(q, dbmodels.AnswerSet{"q1": "no"}))
	})
}

func TestFilterVisible(t *testing.T) {
	t.Run(`orders by position`, func(t *testing.T) {
		questions := []dbmodels.AssessmentQuestion{
			question("q3", 2, nil),
			question("q1", 0, nil),
			question("q2", 1, nil),
		}
		visible := FilterVisible(questions, dbmodels.AnswerSet{})
		require.Len(t, visible, 3)
		require.Equal(t, "q1", visible[0].ID)
		require.Equal(t, "q2", visible[1].ID)
		require.Equal(t, "q3", visible[2].ID)
	})

	t.Run(`hides unmatched dependents`, func(t *testing.T) {
		questions := []dbmodels.AssessmentQuestion{
			question("q1", 0, nil),
			question("q2", 1, &dbmodels.QuestionCondition{
				DependsOn: "q1",
				Condition: "equals",
				Value:     "yes",
			}),
		}
		visible := FilterVisible(questions, dbmodels.AnswerSet{"q1": "no"})
		require.Len(t, visible, 1)
		require.Equal(t, "q1", visible[0].ID)

		visible = FilterVisible(questions, dbmodels.AnswerSet{"q1": "yes"})
		require.Len(t, visible, 2)
	})

	t.Run(`dangling dependency keeps the question visible`, func(t *testing.T) {
		questions := []dbmodels.AssessmentQuestion{
			question("q2", 0, &dbmodels.QuestionCondition{
				DependsOn: "deleted",
				Condition: "equals",
				Value:     "yes",
			}),
		}
		visible := FilterVisible(questions, dbmodels.AnswerSet{})
		require.Len(t, visible, 1)
	})
}
