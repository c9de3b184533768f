package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cougcuts/internal/engine"
	"cougcuts/pkg/utils"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	out, err := run(t, "generate",
		"--hair-type", "curly",
		"--budget", "low",
		"--goal", "moisture",
		"--answer", "porosity=low",
		"--answer", "activity_level=very_active")
	require.NoError(t, err)

	var routine engine.GeneratedRoutine
	require.NoError(t, json.Unmarshal([]byte(out), &routine))
	assert.Equal(t, "curly_low_very_active_low", routine.ProfileID)
	assert.True(t, strings.HasPrefix(routine.Challenge, "Low porosity means products sit on your hair"))

	var ids []string
	for _, p := range routine.Products {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, engine.MicrofiberTowelID)
}

func TestGenerateCmd_AnswersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"hair_type": "wavy",
		"hair_goals": ["frizz", "damage_repair"],
		"budget": "premium"
	}`), 0o644))

	out, err := run(t, "generate", "--answers-file", path)
	require.NoError(t, err)

	var routine engine.GeneratedRoutine
	require.NoError(t, json.Unmarshal([]byte(out), &routine))
	assert.Equal(t, "wavy_premium", routine.ProfileID)
}

func TestGenerateCmd_Errors(t *testing.T) {
	_, err := run(t, "generate")
	assert.ErrorContains(t, err, "hair type is required")

	_, err = run(t, "generate", "--hair-type", "curly", "--budget", "cheap")
	assert.ErrorContains(t, err, "unknown budget")

	_, err = run(t, "generate", "--hair-type", "curly", "--answer", "porosity")
	assert.ErrorContains(t, err, "expected key=value")

	_, err = run(t, "generate", "--hair-type", "curly", "--answer", "porosity=medium", "--validate")
	assert.ErrorContains(t, err, "porosity")
}

func TestQuestionsCmd(t *testing.T) {
	out, err := run(t, "questions", "--hair-type", "wavy")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "hair_type"))
	assert.True(t, strings.HasPrefix(lines[2], "wave_pattern"))
	assert.True(t, strings.HasPrefix(lines[7], "budget"))
}

func TestAnswerFlags_RepeatedKeyIsMulti(t *testing.T) {
	f := answerFlags{pairs: []string{"hair_goals=frizz", "hair_goals=volume", "porosity=low"}}
	answers, err := f.build()
	require.NoError(t, err)
	assert.True(t, answers["hair_goals"].IsMulti())
	assert.Equal(t, []string{"frizz", "volume"}, answers.Values("hair_goals"))
	assert.True(t, answers.Is("porosity", "low"))
}

func TestHashPasswordCmd(t *testing.T) {
	logger = zap.NewNop()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("go cougs\n"))
	root.SetArgs([]string{"hash-password"})
	require.NoError(t, root.Execute())

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, utils.ComparePasswords(hash, "go cougs"))

	root = newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("\n"))
	root.SetArgs([]string{"hash-password"})
	assert.ErrorContains(t, root.Execute(), "password is empty")
}
