package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Answer is the response to one question: a single value for single, image
// and text questions, an ordered list for multi-choice questions.
type Answer struct {
	values []string
	multi  bool
}

// Single builds a single-value answer.
func Single(v string) Answer {
	return Answer{values: []string{v}}
}

// Multi builds a multi-value answer. The slice is copied.
func Multi(vs ...string) Answer {
	cp := make([]string, len(vs))
	copy(cp, vs)
	return Answer{values: cp, multi: true}
}

// IsMulti reports whether the answer came from a multi-choice question.
func (a Answer) IsMulti() bool { return a.multi }

// Value returns the answer as a single string. Multi answers report false.
func (a Answer) Value() (string, bool) {
	if a.multi || len(a.values) == 0 {
		return "", false
	}
	return a.values[0], true
}

// Values returns a copy of every value in the answer.
func (a Answer) Values() []string {
	cp := make([]string, len(a.values))
	copy(cp, a.values)
	return cp
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		vs := a.values
		if vs == nil {
			vs = []string{}
		}
		return json.Marshal(vs)
	}
	v, _ := a.Value()
	return json.Marshal(v)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		vals := make([]string, 0, len(raw))
		for _, r := range raw {
			s, err := scalarString(r)
			if err != nil {
				return err
			}
			vals = append(vals, s)
		}
		*a = Answer{values: vals, multi: true}
		return nil
	}
	s, err := scalarString(data)
	if err != nil {
		return err
	}
	*a = Single(s)
	return nil
}

// scalarString accepts JSON strings, numbers and booleans.
func scalarString(data json.RawMessage) (string, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return "", err
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported answer value %s", string(data))
	}
}

// Answers maps question id to answer. The engine only reads it.
type Answers map[string]Answer

// Value returns the single answer stored under key. Missing keys, empty
// strings and multi answers report false.
func (a Answers) Value(key string) (string, bool) {
	ans, ok := a[key]
	if !ok {
		return "", false
	}
	v, ok := ans.Value()
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Is reports whether the single answer under key equals want.
func (a Answers) Is(key, want string) bool {
	v, ok := a.Value(key)
	return ok && v == want
}

// Values returns every value stored under key, or nil.
func (a Answers) Values(key string) []string {
	ans, ok := a[key]
	if !ok {
		return nil
	}
	return ans.Values()
}

// FromStrings is a convenience for callers holding plain single answers.
func FromStrings(m map[string]string) Answers {
	out := make(Answers, len(m))
	for k, v := range m {
		out[k] = Single(v)
	}
	return out
}
