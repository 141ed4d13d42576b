package attempt

import (
	"testing"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidateAnswers(t *testing.T) {
	t.Run(`required question must have an answer`, func(t *testing.T) {
		q := question("q1", 0, nil)
		q.Label = "Full name"
		q.Required = true
		questions := []dbmodels.AssessmentQuestion{q}

		msg := ValidateAnswers(questions, dbmodels.AnswerSet{})
		require.Equal(t, "Please answer: Full name", msg)

		msg = ValidateAnswers(questions, dbmodels.AnswerSet{"q1": "   "})
		require.Equal(t, "Please answer: Full name", msg)

		msg = ValidateAnswers(questions, dbmodels.AnswerSet{"q1": []interface{}{}})
		require.Equal(t, "Please answer: Full name", msg)

		msg = ValidateAnswers(questions, dbmodels.AnswerSet{"q1": "Jordan Lee"})
		require.Equal(t, "", msg)
	})

	t.Run(`label falls back to Question`, func(t *testing.T) {
		q := question("q1", 0, nil)
		q.Label = ""
		q.Required = true
		msg := ValidateAnswers([]dbmodels.AssessmentQuestion{q}, dbmodels.AnswerSet{})
		require.Equal(t, "Please answer: Question", msg)
	})

	t.Run(`numeric answers`, func(t *testing.T) {
		q := question("q1", 0, nil)
		q.Type = models.QuestionNumeric
		q.Label = "Years of experience"
		q.Validation = dbmodels.QuestionValidation{
			Min: floatPtr(0),
			Max: floatPtr(50),
		}
		questions := []dbmodels.AssessmentQuestion{q}

		require.Equal(t, "", ValidateAnswers(questions, dbmodels.AnswerSet{"q1": float64(5)}))
		require.Equal(t, "", ValidateAnswers(questions, dbmodels.AnswerSet{"q1": "50"}))
		require.Equal(t, "", ValidateAnswers(questions, dbmodels.AnswerSet{"q1": float64(0)}))

		msg := ValidateAnswers(questions, dbmodels.AnswerSet{"q1": "abc"})
		require.Equal(t, "Years of experience: enter a valid number", msg)

		msg = ValidateAnswers(questions, dbmodels.AnswerSet{"q1": float64(-1)})
		require.Equal(t, "Years of experience: must be >= 0", msg)

		msg = ValidateAnswers(questions, dbmodels.AnswerSet{"q1": "51"})
		require.Equal(t, "Years of experience: must be <= 50", msg)
	})

	t.Run(`optional question is skipped when empty`, func(t *testing.T) {
		q := question("q1", 0, nil)
		q.Type = models.QuestionNumeric
		q.Required = false
		q.Validation = dbmodels.QuestionValidation{Min: floatPtr(0)}
		require.Equal(t, "", ValidateAnswers([]dbmodels.AssessmentQuestion{q}, dbmodels.AnswerSet{}))
	})

	t.Run(`text max length counts runes`, func(t *testing.T) {
		q := question("q1", 0, nil)
		q.Type = models.QuestionLongText
		q.Label = "Cover letter"
		q.Validation = dbmodels.QuestionValidation{MaxLength: intPtr(100)}
		questions := []dbmodels.AssessmentQuestion{q}

		exact := make([]rune, 100)
		for i := range exact {
			exact[i] = 'a'
		}
		require.Equal(t, "", ValidateAnswers(questions, dbmodels.AnswerSet{"q1": string(exact)}))

		over := string(exact) + "b"
		msg := ValidateAnswers(questions, dbmodels.AnswerSet{"q1": over})
		require.Equal(t, "Cover letter: max length 100", msg)
	})

	t.Run(`hidden required question is not validated`, func(t *testing.T) {
		q1 := question("q1", 0, nil)
		q1.Label = "Do you have a degree?"
		q2 := question("q2", 1, &dbmodels.QuestionCondition{
			DependsOn: "q1",
			Condition: "equals",
			Value:     "yes",
		})
		q2.Label = "Which degree?"
		q2.Required = true
		questions := []dbmodels.AssessmentQuestion{q1, q2}

		// q2 hidden, its required flag must not fire
		require.Equal(t, "", ValidateAnswers(questions, dbmodels.AnswerSet{"q1": "no"}))

		msg := ValidateAnswers(questions, dbmodels.AnswerSet{"q1": "yes"})
		require.Equal(t, "Please answer: Which degree?", msg)
	})

	t.Run(`fail-fast returns the first failure in position order`, func(t *testing.T) {
		q1 := question("q1", 0, nil)
		q1.Label = "First"
		q1.Required = true
		q2 := question("q2", 1, nil)
		q2.Label = "Second"
		q2.Required = true
		msg := ValidateAnswers([]dbmodels.AssessmentQuestion{q2, q1}, dbmodels.AnswerSet{})
		require.Equal(t, "Please answer: First", msg)
	})
}
