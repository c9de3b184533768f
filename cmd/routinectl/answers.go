package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cougcuts/internal/engine"
)

// answerFlags collects the answer inputs shared by every command.
type answerFlags struct {
	hairType    string
	pairs       []string
	answersFile string
}

// build merges the answers file, then key=value pairs, then --hair-type.
// A key given more than once becomes a multi answer.
func (f *answerFlags) build() (engine.Answers, error) {
	answers := engine.Answers{}

	if f.answersFile != "" {
		data, err := os.ReadFile(f.answersFile)
		if err != nil {
			return nil, fmt.Errorf("read answers file: %w", err)
		}
		if err := json.Unmarshal(data, &answers); err != nil {
			return nil, fmt.Errorf("parse answers file %s: %w", f.answersFile, err)
		}
	}

	collected := map[string][]string{}
	var order []string
	for _, pair := range f.pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("answer %q: expected key=value", pair)
		}
		if _, seen := collected[key]; !seen {
			order = append(order, key)
		}
		collected[key] = append(collected[key], strings.TrimSpace(value))
	}
	for _, key := range order {
		vals := collected[key]
		if len(vals) == 1 {
			answers[key] = engine.Single(vals[0])
		} else {
			answers[key] = engine.Multi(vals...)
		}
	}

	if f.hairType != "" {
		answers[engine.QuestionHairType] = engine.Single(f.hairType)
	}
	return answers, nil
}
