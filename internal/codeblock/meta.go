package codeblock

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value pairs parsed from the part of a fence info string
// that follows the language tag. Both `key=value` words and a JSON object
// form are accepted.
type Meta map[string]interface{}

// Get returns the value for name as a string, or "" when the key is
// missing or the Meta is nil.
func (m Meta) Get(name string) string {
	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

var (
	reJSONObject = regexp.MustCompile(`^\s*{\s*["}]`)
	reBraced     = regexp.MustCompile(`^\s*{(.*)}$`)
)

func parseMeta(input []byte) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSONObject.Match(input) {
		var meta Meta

		if err := json.Unmarshal(input, &meta); err != nil {
			return nil, err
		}

		return meta, nil
	}

	// An optional brace wrapper around key=value words is tolerated.
	if subs := reBraced.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, err
	}

	meta := make(Meta)

	for _, word := range words {
		if idx := strings.IndexRune(word, '='); idx >= 0 {
			meta[word[:idx]] = word[idx+1:]
		}
	}

	return meta, nil
}
