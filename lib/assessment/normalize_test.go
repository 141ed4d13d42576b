package assessmenthandler

import (
	"testing"

	"talentflow-backend/models"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNormalizeQuestions(t *testing.T) {
	t.Run(`keeps sent ids and assigns fresh ones`, func(t *testing.T) {
		result := normalizeQuestions([]assessmentapimodels.QuestionData{
			{ID: "keep-me", Type: models.QuestionShortText, Label: "A"},
			{Type: models.QuestionShortText, Label: "B"},
		})
		require.Len(t, result, 2)
		require.Equal(t, "keep-me", result[0].ID)
		require.NotEmpty(t, result[1].ID)
		require.NotEqual(t, result[0].ID, result[1].ID)
	})

	t.Run(`position defaults to slice index`, func(t *testing.T) {
		result := normalizeQuestions([]assessmentapimodels.QuestionData{
			{Type: models.QuestionShortText},
			{Type: models.QuestionShortText, Position: intPtr(7)},
			{Type: models.QuestionShortText},
		})
		require.Equal(t, 0, result[0].Position)
		require.Equal(t, 7, result[1].Position)
		require.Equal(t, 2, result[2].Position)
	})

	t.Run(`choice questions without options get the defaults`, func(t *testing.T) {
		result := normalizeQuestions([]assessmentapimodels.QuestionData{
			{Type: models.QuestionSingleChoice},
		})
		require.Equal(t, defaultOptions(), result[0].Options)
	})

	t.Run(`sent options survive`, func(t *testing.T) {
		options := dbmodels.QuestionOptions{
			{ID: 1, Text: "Yes", Value: 1},
			{ID: 2, Text: "No", Value: 2},
			{ID: 3, Text: "Maybe", Value: 3},
		}
		result := normalizeQuestions([]assessmentapimodels.QuestionData{
			{Type: models.QuestionMultiChoice, Options: options},
		})
		require.Equal(t, options, result[0].Options)
	})

	t.Run(`non-choice questions get options cleared`, func(t *testing.T) {
		result := normalizeQuestions([]assessmentapimodels.QuestionData{
			{Type: models.QuestionShortText, Options: defaultOptions()},
		})
		require.Nil(t, result[0].Options)
	})

	t.Run(`validation and conditional are preserved as sent`, func(t *testing.T) {
		maxLen := 200
		conditional := &dbmodels.QuestionCondition{
			DependsOn: "other",
			Condition: "equals",
			Value:     "yes",
		}
		// a numeric question carrying a text validation stays untouched,
		// the evaluator just never reads it
		result := normalizeQuestions([]assessmentapimodels.QuestionData{
			{
				Type:        models.QuestionNumeric,
				Validation:  dbmodels.QuestionValidation{MaxLength: &maxLen},
				Conditional: conditional,
			},
		})
		require.Equal(t, &maxLen, result[0].Validation.MaxLength)
		require.Equal(t, conditional, result[0].Conditional)
	})
}

func TestNextOptionID(t *testing.T) {
	options := dbmodels.QuestionOptions{
		{ID: 1, Text: "Option 1", Value: 1},
		{ID: 5, Text: "Option 5", Value: 5},
		{ID: 2, Text: "Option 2", Value: 2},
	}
	require.Equal(t, 6, options.NextOptionID())
	require.Equal(t, 1, dbmodels.QuestionOptions{}.NextOptionID())
}
