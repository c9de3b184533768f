package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		fields  map[string]string
	}{
		{
			name: "valid curly submission",
			answers: Answers{
				"hair_type":  Single("curly"),
				"hair_goals": Multi("moisture", "frizz"),
				"porosity":   Single("low"),
				"budget":     Single("mid"),
			},
		},
		{
			name:    "unknown keys ignored",
			answers: Answers{"hair_type": Single("wavy"), "favourite_colour": Single("crimson")},
		},
		{
			name:    "questions for another type ignored",
			answers: Answers{"hair_type": Single("straight"), "porosity": Single("sideways")},
		},
		{
			name:    "missing hair type",
			answers: Answers{"porosity": Single("low")},
			fields:  map[string]string{"hair_type": "required"},
		},
		{
			name:    "unknown hair type",
			answers: Answers{"hair_type": Single("purple")},
			fields:  map[string]string{"hair_type": `unknown hair type "purple"`},
		},
		{
			name:    "unknown option",
			answers: Answers{"hair_type": Single("curly"), "porosity": Single("medium")},
			fields:  map[string]string{"porosity": `unknown option "medium"`},
		},
		{
			name:    "list for a single choice",
			answers: Answers{"hair_type": Single("curly"), "porosity": Multi("low", "high")},
			fields:  map[string]string{"porosity": "expected a single value"},
		},
		{
			name:    "every failing answer reported",
			answers: Answers{"hair_type": Single("curly"), "porosity": Single("medium"), "budget": Multi("low")},
			fields: map[string]string{
				"porosity": `unknown option "medium"`,
				"budget":   "expected a single value",
			},
		},
		{
			name:    "too many goals",
			answers: Answers{"hair_type": Single("coily"), "hair_goals": Multi("growth", "moisture", "volume", "frizz", "definition")},
			fields:  map[string]string{"hair_goals": "select at most 4"},
		},
		{
			name:    "empty goals",
			answers: Answers{"hair_type": Single("coily"), "hair_goals": Multi()},
			fields:  map[string]string{"hair_goals": "select at least 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswers(tt.answers)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var ae *AnswerError
			require.True(t, errors.As(err, &ae), "got %v", err)
			assert.Equal(t, tt.fields, ae.Fields)
		})
	}
}

func TestAnswerError_Message(t *testing.T) {
	err := &AnswerError{Fields: map[string]string{
		"porosity":  `unknown option "medium"`,
		"hair_type": "required",
	}}
	assert.Equal(t, `hair_type: required; porosity: unknown option "medium"`, err.Detail())
	assert.Equal(t, `invalid answers: hair_type: required; porosity: unknown option "medium"`, err.Error())
}
