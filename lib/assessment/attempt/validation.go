package attempt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// ValidateAnswers checks the visible questions in ascending position order
// and returns the first failure as a user-facing message, or "" when the
// answer set passes. Hidden questions are never validated, even when they
// carry stale answers.
func ValidateAnswers(questions []dbmodels.AssessmentQuestion, answers dbmodels.AnswerSet) string {
	for _, q := range FilterVisible(questions, answers) {
		val := answers[q.ID]
		if q.Required && isEmpty(val) {
			return fmt.Sprintf("Please answer: %s", questionLabel(q))
		}
		if isEmpty(val) {
			continue
		}
		switch {
		case q.Type == models.QuestionNumeric:
			if msg := validateNumeric(q, val); msg != "" {
				return msg
			}
		case q.Type.IsText():
			if msg := validateText(q, val); msg != "" {
				return msg
			}
		}
	}
	return ""
}

func validateNumeric(q dbmodels.AssessmentQuestion, val interface{}) string {
	num, ok := numericValue(val)
	if !ok {
		return fmt.Sprintf("%s: enter a valid number", questionLabel(q))
	}
	// bounds are inclusive
	if q.Validation.Min != nil && num < *q.Validation.Min {
		return fmt.Sprintf("%s: must be >= %s", questionLabel(q), formatBound(*q.Validation.Min))
	}
	if q.Validation.Max != nil && num > *q.Validation.Max {
		return fmt.Sprintf("%s: must be <= %s", questionLabel(q), formatBound(*q.Validation.Max))
	}
	return ""
}

func validateText(q dbmodels.AssessmentQuestion, val interface{}) string {
	if q.Validation.MaxLength == nil {
		return ""
	}
	text, ok := val.(string)
	if !ok {
		return ""
	}
	if len([]rune(text)) > *q.Validation.MaxLength {
		return fmt.Sprintf("%s: max length %d", questionLabel(q), *q.Validation.MaxLength)
	}
	return ""
}

func questionLabel(q dbmodels.AssessmentQuestion) string {
	if q.Label == "" {
		return "Question"
	}
	return q.Label
}

func isEmpty(val interface{}) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []interface{}:
		return len(v) == 0
	}
	return false
}

func numericValue(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case string:
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsInf(num, 0) || math.IsNaN(num) {
			return 0, false
		}
		return num, true
	}
	return 0, false
}

func formatBound(bound float64) string {
	return strconv.FormatFloat(bound, 'f', -1, 64)
}
