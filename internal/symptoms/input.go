package symptoms

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Input is either free text or an already segmented list of symptom phrases.
type Input struct {
	Text   string
	List   []string
	IsList bool
}

func TextInput(text string) Input {
	return Input{Text: text}
}

func ListInput(list ...string) Input {
	return Input{List: list, IsList: true}
}

// UnmarshalJSON accepts a JSON string or an array. Array elements that are
// not strings are kept as their JSON text, null elements as "". Any other
// value decodes as empty input.
func (in *Input) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*in = TextInput(s)
	case len(b) > 0 && b[0] == '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		list := make([]string, 0, len(raw))
		for _, r := range raw {
			list = append(list, element(r))
		}
		*in = ListInput(list...)
	default:
		*in = Input{}
	}
	return nil
}

func element(r json.RawMessage) string {
	var s string
	if err := json.Unmarshal(r, &s); err == nil {
		return s
	}
	if bytes.Equal(r, []byte("null")) {
		return ""
	}
	return string(bytes.TrimSpace(r))
}

func (in Input) MarshalJSON() ([]byte, error) {
	if in.IsList {
		return json.Marshal(in.List)
	}
	return json.Marshal(in.Text)
}

// Empty reports missing or blank text, or an empty list. A list with only
// blank entries is not empty; it analyzes to the fallback condition.
func (in Input) Empty() bool {
	if in.IsList {
		return len(in.List) == 0
	}
	return strings.TrimSpace(in.Text) == ""
}

// String joins list input with ", " and returns text input unchanged.
func (in Input) String() string {
	if in.IsList {
		return strings.Join(in.List, ", ")
	}
	return in.Text
}
