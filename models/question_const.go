package models

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFile         QuestionType = "file"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionSingleChoice, QuestionMultiChoice, QuestionShortText,
		QuestionLongText, QuestionNumeric, QuestionFile:
		return true
	}
	return false
}

func (t QuestionType) IsChoice() bool {
	return t == QuestionSingleChoice || t == QuestionMultiChoice
}

func (t QuestionType) IsText() bool {
	return t == QuestionShortText || t == QuestionLongText
}

// ConditionEquals is the only condition keyword evaluated today; unknown
// keywords resolve to visible so older snapshots keep rendering.
const ConditionEquals = "equals"
