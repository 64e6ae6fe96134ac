// Package testutil holds fixtures and helpers shared by the package tests.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hypergraph/internal/ctxlog"
	"github.com/vk/hypergraph/internal/record"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Context returns a background context carrying a debug-level text logger
// that writes into the returned buffer.
func Context(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// WriteFiles creates the given files below dir, creating parent directories
// as needed. Keys are slash-separated paths relative to dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// ScenarioStore is the reference database used across the tests:
//
//	debate 1
//	└── debate 2
//	    └── position 5 "X"
//	        └── position 6 "Y"
//	            └── argument 1 "Z" (verdict 1)
func ScenarioStore() *record.Snapshot {
	return record.NewSnapshot().
		AddDebate(record.Debate{ID: 1, Name: record.NewText("All debates")}).
		AddDebate(record.Debate{ID: 2, Name: record.NewText("Free will"), LargerDebates: []record.ID{1}}).
		AddPosition(record.Position{ID: 5, Name: record.NewText("X"), Debates: []record.ID{2}}).
		AddPosition(record.Position{ID: 6, Name: record.NewText("Y"), LargerPositions: []record.ID{5}}).
		AddArgument(record.Argument{
			ID:        1,
			Name:      record.NewText("Z"),
			Positions: []record.PositionRef{{Position: 6, Verdict: 1, HasVerdict: true}},
		})
}

// ScenarioXML holds the ScenarioStore database as Hypernomicon XML files.
var ScenarioXML = map[string]string{
	"Debates.xml": `<?xml version="1.0" encoding="UTF-8"?>
<records version="1.2">
  <record type="debate" id="1"><name>All debates</name></record>
  <record type="debate" id="2"><name>Free will</name><larger_debate id="1"/></record>
</records>
`,
	"Positions.xml": `<?xml version="1.0" encoding="UTF-8"?>
<records version="1.2">
  <record type="position" id="5"><name>X</name><debate id="2"/></record>
  <record type="position" id="6"><name>Y</name><larger_position id="5"/></record>
</records>
`,
	"Arguments.xml": `<?xml version="1.0" encoding="UTF-8"?>
<records version="1.2">
  <record type="argument" id="1"><name>Z</name><position id="6" verdict_id="1"/></record>
</records>
`,
}
