package engine

import (
	"fmt"
	"sort"
	"strings"
)

// AnswerError lists the question ids whose answers failed validation, with a
// reason per id.
type AnswerError struct {
	Fields map[string]string
}

func (e *AnswerError) Error() string {
	return "invalid answers: " + e.Detail()
}

// Detail lists "id: reason" pairs sorted by id.
func (e *AnswerError) Detail() string {
	ids := make([]string, 0, len(e.Fields))
	for id := range e.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id+": "+e.Fields[id])
	}
	return strings.Join(parts, "; ")
}

// ValidateAnswers checks a submission against the question bank. The engine
// itself never calls this; it tolerates any answer set.
//
// Only answered questions are checked, apart from hair_type which must be
// present and known. Unknown keys are ignored.
func ValidateAnswers(answers Answers) error {
	fields := map[string]string{}

	ht, ok := answers.Value(QuestionHairType)
	if !ok {
		fields[QuestionHairType] = "required"
	} else if _, known := ParseHairType(ht); !known {
		fields[QuestionHairType] = fmt.Sprintf("unknown hair type %q", ht)
	}

	for _, q := range QuestionsFor(HairType(ht), answers) {
		ans, present := answers[q.ID]
		if !present || q.ID == QuestionHairType {
			continue
		}
		if msg := checkAnswer(q, ans); msg != "" {
			fields[q.ID] = msg
		}
	}

	if len(fields) > 0 {
		return &AnswerError{Fields: fields}
	}
	return nil
}

func checkAnswer(q Question, ans Answer) string {
	switch q.Type {
	case MultiChoice:
		vals := ans.Values()
		if q.Validation != nil {
			if q.Validation.Min != nil && len(vals) < *q.Validation.Min {
				return fmt.Sprintf("select at least %d", *q.Validation.Min)
			}
			if q.Validation.Max != nil && len(vals) > *q.Validation.Max {
				return fmt.Sprintf("select at most %d", *q.Validation.Max)
			}
		}
		for _, v := range vals {
			if !q.hasOption(v) {
				return fmt.Sprintf("unknown option %q", v)
			}
		}
	case SingleChoice, ImageChoice:
		v, ok := ans.Value()
		if !ok {
			return "expected a single value"
		}
		if !q.hasOption(v) {
			return fmt.Sprintf("unknown option %q", v)
		}
	case TextInput:
		if ans.IsMulti() {
			return "expected a single value"
		}
	}
	return ""
}
