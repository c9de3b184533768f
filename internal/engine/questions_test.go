package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionIDs(qs []Question) []string {
	ids := make([]string, 0, len(qs))
	for _, q := range qs {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestQuestionsFor(t *testing.T) {
	tests := []struct {
		name     string
		hairType HairType
		answers  Answers
		want     []string
	}{
		{
			name:     "wavy before hair type is answered",
			hairType: HairWavy,
			answers:  Answers{},
			want: []string{
				"hair_type", "hair_goals",
				"wave_pattern", "frizz_level", "density", "wash_frequency", "desired_outcome",
				"budget",
			},
		},
		{
			name:     "curly block",
			hairType: HairCurly,
			answers:  FromStrings(map[string]string{"hair_type": "curly"}),
			want: []string{
				"hair_type", "hair_goals",
				"curl_pattern", "porosity", "activity_level", "curl_frustration", "morning_time",
				"budget",
			},
		},
		{
			name:     "answered hair type disagrees",
			hairType: HairCurly,
			answers:  FromStrings(map[string]string{"hair_type": "wavy"}),
			want:     []string{"hair_type", "hair_goals", "budget"},
		},
		{
			name:     "unknown hair type",
			hairType: "purple",
			answers:  Answers{},
			want:     []string{"hair_type", "hair_goals", "budget"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := questionIDs(QuestionsFor(tt.hairType, tt.answers))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("QuestionsFor() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuestionsFor_DoesNotMutateAnswers(t *testing.T) {
	answers := Answers{}
	QuestionsFor(HairCoily, answers)
	assert.Empty(t, answers)
}

func TestAllQuestions(t *testing.T) {
	all := AllQuestions()
	require.Len(t, all, 23)
	assert.Equal(t, QuestionHairType, all[0].ID)
	assert.Equal(t, QuestionBudget, all[len(all)-1].ID)

	q, ok := QuestionByID("porosity")
	require.True(t, ok)
	assert.Equal(t, SingleChoice, q.Type)
	require.NotNil(t, q.DependsOn)
	assert.Equal(t, []string{"curly"}, q.DependsOn.Answers)

	goals, ok := QuestionByID(QuestionHairGoals)
	require.True(t, ok)
	require.NotNil(t, goals.Validation)
	assert.Equal(t, 1, *goals.Validation.Min)
	assert.Equal(t, 4, *goals.Validation.Max)

	_, ok = QuestionByID("nope")
	assert.False(t, ok)
}
