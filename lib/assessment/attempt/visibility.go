package attempt

import (
	"reflect"
	"sort"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// Visible is the conditional-visibility rule for a single question:
//   - no conditional: always visible,
//   - "equals": visible iff the dependency's answer strictly equals the
//     configured value, type-sensitive ("1" does not match 1); an absent
//     answer only matches an absent value,
//   - any other condition keyword: visible (forward-compatible default).
func Visible(q dbmodels.AssessmentQuestion, answers dbmodels.AnswerSet) bool {
	if q.Conditional == nil {
		return true
	}
	if q.Conditional.Condition != models.ConditionEquals {
		return true
	}
	return answerEquals(answers[q.Conditional.DependsOn], q.Conditional.Value)
}

func answerEquals(got, want interface{}) bool {
	return reflect.DeepEqual(got, want)
}

// FilterVisible resolves the whole question set in ascending position order
// and returns only the questions that render. A dependency can point
// forward: its answer is simply absent at that point, a vacuous non-match.
// A conditional whose dependency question no longer exists in the set is
// ignored and the question stays visible.
func FilterVisible(questions []dbmodels.AssessmentQuestion, answers dbmodels.AnswerSet) []dbmodels.AssessmentQuestion {
	ordered := make([]dbmodels.AssessmentQuestion, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})
	ids := make(map[string]bool, len(ordered))
	for _, q := range ordered {
		ids[q.ID] = true
	}
	visible := make([]dbmodels.AssessmentQuestion, 0, len(ordered))
	for _, q := range ordered {
		if q.Conditional != nil && !ids[q.Conditional.DependsOn] {
			visible = append(visible, q)
			continue
		}
		if Visible(q, answers) {
			visible = append(visible, q)
		}
	}
	return visible
}
