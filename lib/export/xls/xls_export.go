package xlsexport

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportSubmissionList(assessment dbmodels.Assessment, questions []dbmodels.AssessmentQuestion, list []dbmodels.AssessmentResponse) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) ExportSubmissionList(assessment dbmodels.Assessment, questions []dbmodels.AssessmentQuestion, list []dbmodels.AssessmentResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	headers := submissionHeaders(questions)
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, headers)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeSubmissionData(f, sheet, questions, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Submissions")
	return f.WriteToBuffer()
}

func submissionHeaders(questions []dbmodels.AssessmentQuestion) []string {
	headers := []string{"Candidate", "Submitted at"}
	for _, q := range questions {
		label := q.Label
		if label == "" {
			label = "Question"
		}
		headers = append(headers, label)
	}
	return headers
}

func writeSubmissionData(f *excelize.File, sheet string, questions []dbmodels.AssessmentQuestion, list []dbmodels.AssessmentResponse, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(questions)+2, len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CandidateID); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02.01.2006 15:04")); err != nil {
			return row, err
		}

		for _, q := range questions {
			col++
			if err := writeColumn(f, sheet, col, row, formatAnswer(q, item.Answers[q.ID])); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

// formatAnswer renders a submitted value for a cell; choice answers are
// resolved to their option text when the option still exists.
func formatAnswer(q dbmodels.AssessmentQuestion, val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if q.Type.IsChoice() {
			return optionText(q.Options, v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatAnswer(q, item))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%v", val)
}

func optionText(options dbmodels.QuestionOptions, value float64) string {
	for _, opt := range options {
		if float64(opt.Value) == value {
			return opt.Text
		}
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
