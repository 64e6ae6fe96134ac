package gojs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Indent is the indentation used for saved descriptions.
const Indent = "    "

// Marshal encodes m the way the extractor persists it: indented, with a
// trailing newline and without HTML escaping, so labels containing < or &
// stay readable in the file.
func Marshal(m *Model) ([]byte, error) {
	out := *m
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	if out.Links == nil {
		out.Links = []Link{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(&out); err != nil {
		return nil, fmt.Errorf("failed to encode graph model: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a saved description. Anything that is not a JSON object
// with node and link arrays of the expected shape is an error, JSON null and
// missing arrays included; the caller must not fall back to an empty layout
// in that case. Empty arrays are valid.
func Unmarshal(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("malformed graph model: %w", err)
	}
	if m.Class != "" && m.Class != GraphLinksModel {
		return nil, fmt.Errorf("malformed graph model: unsupported class %q", m.Class)
	}
	if m.Nodes == nil {
		return nil, fmt.Errorf("malformed graph model: missing nodeDataArray")
	}
	if m.Links == nil {
		return nil, fmt.Errorf("malformed graph model: missing linkDataArray")
	}
	return &m, nil
}
