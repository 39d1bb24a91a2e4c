// SPDX-License-Identifier: MIT

package sharefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polysecret/secret"
)

// MetaKey is the document entry holding the share counts.
const MetaKey = "keys"

// ErrMalformed indicates a document that does not have the share-file shape.
var ErrMalformed = errors.New("sharefile: malformed document")

// malformedf wraps ErrMalformed with detail.
func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...)
}

// scalar is a JSON value that may be written as a string or a number.
// Numbers keep their literal text ("10" and 10 both yield "10").
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("want string or number, got %s", b)
	}
	*s = scalar(n.String())

	return nil
}

type jsonShare struct {
	Base  *scalar `json:"base"`
	Value *scalar `json:"value"`
}

// ParseJSON reads a share document such as
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, ...}
//
// A missing "keys" entry leaves Input.Meta nil; Reconstruct then reports
// secret.ErrMissingMetadata. Entries are read in document order (a repeated
// key keeps its first position and its last value) and then ordered with
// SortShares.
func ParseJSON(data []byte) (secret.Input, error) {
	entries, err := jsonEntries(data)
	if err != nil {
		return secret.Input{}, err
	}

	var in secret.Input
	for _, e := range entries {
		if e.key == MetaKey {
			var meta secret.Metadata
			if err = json.Unmarshal(e.msg, &meta); err != nil {
				return secret.Input{}, malformedf("%q: %v", e.key, err)
			}
			in.Meta = &meta
			continue
		}
		var js jsonShare
		if err = json.Unmarshal(e.msg, &js); err != nil {
			return secret.Input{}, malformedf("share %q: %v", e.key, err)
		}
		if js.Base == nil || js.Value == nil {
			return secret.Input{}, malformedf("share %q: base and value are required", e.key)
		}
		in.Shares = append(in.Shares, secret.Share{Key: e.key, Base: string(*js.Base), Value: string(*js.Value)})
	}
	SortShares(in.Shares)

	return in, nil
}

type jsonEntry struct {
	key string
	msg json.RawMessage
}

// jsonEntries splits a top-level JSON object into its members, in order.
func jsonEntries(data []byte) ([]jsonEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, malformedf("%v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, malformedf("top level must be an object")
	}

	var entries []jsonEntry
	seen := make(map[string]int)
	for dec.More() {
		if tok, err = dec.Token(); err != nil {
			return nil, malformedf("%v", err)
		}
		key := tok.(string) // object keys are always strings
		var msg json.RawMessage
		if err = dec.Decode(&msg); err != nil {
			return nil, malformedf("%q: %v", key, err)
		}
		if i, dup := seen[key]; dup {
			entries[i].msg = msg
			continue
		}
		seen[key] = len(entries)
		entries = append(entries, jsonEntry{key: key, msg: msg})
	}
	if _, err = dec.Token(); err != nil {
		return nil, malformedf("%v", err)
	}
	if _, err = dec.Token(); err != io.EOF {
		return nil, malformedf("trailing data after object")
	}

	return entries, nil
}

type yamlShare struct {
	Base  yaml.Node `yaml:"base"`
	Value yaml.Node `yaml:"value"`
}

// ParseYAML reads the YAML form of a share document:
//
//	keys: {n: 4, k: 3}
//	1: {base: 10, value: "4"}
//	2: {base: 2, value: "111"}
//
// Unquoted scalars keep their literal text, so value: 0111 stays "0111".
func ParseYAML(data []byte) (secret.Input, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return secret.Input{}, malformedf("%v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return secret.Input{}, malformedf("top level must be a mapping")
	}
	root := doc.Content[0]

	var in secret.Input
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		if key == MetaKey {
			var meta secret.Metadata
			if err := val.Decode(&meta); err != nil {
				return secret.Input{}, malformedf("%q: %v", key, err)
			}
			in.Meta = &meta
			continue
		}
		var ys yamlShare
		if err := val.Decode(&ys); err != nil {
			return secret.Input{}, malformedf("share %q: %v", key, err)
		}
		if ys.Base.Kind != yaml.ScalarNode || ys.Value.Kind != yaml.ScalarNode {
			return secret.Input{}, malformedf("share %q: base and value must be scalars", key)
		}
		in.Shares = append(in.Shares, secret.Share{Key: key, Base: ys.Base.Value, Value: ys.Value.Value})
	}
	SortShares(in.Shares)

	return in, nil
}

// Load reads path and parses it by extension: .yaml/.yml as YAML, anything
// else as JSON.
func Load(path string) (secret.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return secret.Input{}, fmt.Errorf("sharefile: read %s: %w", path, err)
	}
	var in secret.Input
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		in, err = ParseYAML(data)
	default:
		in, err = ParseJSON(data)
	}
	if err != nil {
		return secret.Input{}, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// SortShares orders shares the way a JavaScript object iterates its keys:
// array-index keys (canonical decimal integers below 2^32−1, so "1" but not
// "01" or "-1") ascending by value, then every other key in its current
// order. The sort is stable, so pass shares in document order.
func SortShares(shares []secret.Share) {
	sort.SliceStable(shares, func(i, j int) bool {
		xi, okI := arrayIndex(shares[i].Key)
		xj, okJ := arrayIndex(shares[j].Key)
		if okI && okJ {
			return xi < xj
		}

		return okI && !okJ
	})
}

// arrayIndex reports whether key is a canonical array index.
func arrayIndex(key string) (uint64, bool) {
	x, err := strconv.ParseUint(key, 10, 32)
	if err != nil || x == math.MaxUint32 || strconv.FormatUint(x, 10) != key {
		return 0, false
	}

	return x, true
}

// MarshalJSON renders in as an indented share document.
func MarshalJSON(in secret.Input) ([]byte, error) {
	doc := make(map[string]any, len(in.Shares)+1)
	if in.Meta != nil {
		doc[MetaKey] = in.Meta
	}
	for _, s := range in.Shares {
		doc[s.Key] = map[string]string{"base": s.Base, "value": s.Value}
	}

	return json.MarshalIndent(doc, "", "  ")
}
