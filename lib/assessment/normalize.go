package assessmenthandler

import (
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"

	"github.com/google/uuid"
)

// defaultOptions seeds a freshly switched choice question so the authoring
// preview always has something to render.
func defaultOptions() dbmodels.QuestionOptions {
	return dbmodels.QuestionOptions{
		{ID: 1, Text: "Option 1", Value: 1},
		{ID: 2, Text: "Option 2", Value: 2},
	}
}

// normalizeQuestions prepares an authored question list for the wholesale
// replace:
//   - ids sent by the author survive a re-save so conditional references
//     stay stable; missing ids get a fresh uuid,
//   - position falls back to the slice index when not set explicitly,
//   - choice questions without options get the two defaults, non-choice
//     questions get their options cleared,
//   - validation and conditional are stored exactly as sent, even when a
//     type switch left them semantically orphaned.
func normalizeQuestions(questions []assessmentapimodels.QuestionData) []dbmodels.AssessmentQuestion {
	result := make([]dbmodels.AssessmentQuestion, 0, len(questions))
	for idx, q := range questions {
		rec := dbmodels.AssessmentQuestion{
			Type:        q.Type,
			Label:       q.Label,
			Required:    q.Required,
			Placeholder: q.Placeholder,
			Validation:  q.Validation,
			Conditional: q.Conditional,
		}
		if q.ID != "" {
			rec.ID = q.ID
		} else {
			rec.ID = uuid.NewString()
		}
		if q.Position != nil {
			rec.Position = *q.Position
		} else {
			rec.Position = idx
		}
		if q.Type.IsChoice() {
			rec.Options = q.Options
			if len(rec.Options) == 0 {
				rec.Options = defaultOptions()
			}
		} else {
			rec.Options = nil
		}
		result = append(result, rec)
	}
	return result
}
