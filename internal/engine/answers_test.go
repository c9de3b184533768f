package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswersJSON(t *testing.T) {
	var a Answers
	err := json.Unmarshal([]byte(`{
		"hair_type": "curly",
		"hair_goals": ["moisture", "frizz"],
		"morning_time": 3,
		"agree": true,
		"skipped": null
	}`), &a)
	require.NoError(t, err)

	v, ok := a.Value("hair_type")
	assert.True(t, ok)
	assert.Equal(t, "curly", v)

	assert.True(t, a["hair_goals"].IsMulti())
	assert.Equal(t, []string{"moisture", "frizz"}, a.Values("hair_goals"))
	_, ok = a.Value("hair_goals")
	assert.False(t, ok)

	assert.True(t, a.Is("morning_time", "3"))
	assert.True(t, a.Is("agree", "true"))
	_, ok = a.Value("skipped")
	assert.False(t, ok)
	assert.Nil(t, a.Values("missing"))

	out, err := json.Marshal(Answers{"hair_goals": Multi("growth"), "budget": Single("mid"), "none": Multi()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hair_goals":["growth"],"budget":"mid","none":[]}`, string(out))
}

func TestAnswerJSON_RejectsObjects(t *testing.T) {
	var a Answers
	assert.Error(t, json.Unmarshal([]byte(`{"hair_type": {"nested": 1}}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{"hair_goals": [{"nested": 1}]}`), &a))
}

func TestMulti_CopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	ans := Multi(src...)
	src[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, ans.Values())

	vals := ans.Values()
	vals[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, ans.Values())
}
