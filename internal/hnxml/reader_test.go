package hnxml

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hypergraph/internal/record"
	"github.com/vk/hypergraph/internal/testutil"
)

// readFiles reads paths as required sources.
func readFiles(ctx context.Context, paths ...string) (*record.Snapshot, error) {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{Path: p}
	}
	return Read(ctx, sources...)
}

func TestRead_Scenario(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, testutil.ScenarioXML)

	snap, err := readFiles(ctx,
		filepath.Join(dir, "Debates.xml"),
		filepath.Join(dir, "Positions.xml"),
		filepath.Join(dir, "Arguments.xml"),
	)
	require.NoError(t, err)

	assert.Equal(t, testutil.ScenarioStore().Debates(), snap.Debates())
	assert.Equal(t, testutil.ScenarioStore().Positions(), snap.Positions())
	assert.Equal(t, testutil.ScenarioStore().Arguments(), snap.Arguments())
}

func TestRead_DirectoryAndDuplicates(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, testutil.ScenarioXML)

	// The directory already contains Positions.xml; naming it again must
	// not load its records twice.
	snap, err := readFiles(ctx, dir, filepath.Join(dir, "Positions.xml"))
	require.NoError(t, err)

	d, p, a := snap.Len()
	assert.Equal(t, 2, d)
	assert.Equal(t, 2, p)
	assert.Equal(t, 1, a)
}

func TestRead_MissingPathFails(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"Debates.xml": testutil.ScenarioXML["Debates.xml"]})

	_, err := readFiles(ctx, filepath.Join(dir, "Debates.xml"), filepath.Join(dir, "Positions.xml"))
	require.ErrorIs(t, err, ErrMissingSource)
	assert.Contains(t, err.Error(), "Positions.xml")
}

func TestRead_OptionalSourceIsSkipped(t *testing.T) {
	ctx, logs := testutil.Context(t)
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"Positions.xml": testutil.ScenarioXML["Positions.xml"],
		"Arguments.xml": testutil.ScenarioXML["Arguments.xml"],
	})

	snap, err := Read(ctx,
		Source{Path: filepath.Join(dir, "Debates.xml"), Optional: true},
		Source{Path: filepath.Join(dir, "Positions.xml")},
		Source{Path: filepath.Join(dir, "Arguments.xml")},
	)
	require.NoError(t, err)

	d, p, a := snap.Len()
	assert.Equal(t, [3]int{0, 2, 1}, [3]int{d, p, a})
	assert.Contains(t, logs.String(), "Optional record file not found")
}

func TestRead_MissingRequiredAmongOptionalFails(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := t.TempDir()

	_, err := Read(ctx,
		Source{Path: filepath.Join(dir, "Debates.xml"), Optional: true},
		Source{Path: filepath.Join(dir, "Positions.xml")},
	)
	require.ErrorIs(t, err, ErrMissingSource)
}

func TestRead_MalformedFileFails(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"Broken.xml": `<records><record type="debate" id="1">`})

	_, err := readFiles(ctx, filepath.Join(dir, "Broken.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken.xml")
	assert.Contains(t, err.Error(), "malformed XML")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		check   func(t *testing.T, snap *record.Snapshot)
		wantErr string
	}{
		{
			name: "missing name stays invalid, empty name is valid",
			xml: `<records>
				<record type="position" id="1"></record>
				<record type="position" id="2"><name></name></record>
			</records>`,
			check: func(t *testing.T, snap *record.Snapshot) {
				ps := snap.Positions()
				require.Len(t, ps, 2)
				assert.False(t, ps[0].Name.Valid)
				assert.True(t, ps[1].Name.Valid)
				assert.Equal(t, "", ps[1].Name.Value)
			},
		},
		{
			name: "multiple parents and blank references",
			xml: `<records>
				<record type="position" id="7">
					<name> Compatibilism </name>
					<debate id="2"/><debate id="3"/>
					<larger_position id=""/>
				</record>
			</records>`,
			check: func(t *testing.T, snap *record.Snapshot) {
				ps := snap.Positions()
				require.Len(t, ps, 1)
				assert.Equal(t, "Compatibilism", ps[0].Name.Value)
				assert.Equal(t, []record.ID{2, 3}, ps[0].Debates)
				assert.Empty(t, ps[0].LargerPositions)
			},
		},
		{
			name: "argument verdicts and counterarguments",
			xml: `<records>
				<record type="argument" id="4">
					<name>Consequence argument</name>
					<position id="7" verdict_id="1"/>
					<position id="8"/>
					<counterargument id="3"/>
				</record>
			</records>`,
			check: func(t *testing.T, snap *record.Snapshot) {
				as := snap.Arguments()
				require.Len(t, as, 1)
				assert.Equal(t, []record.PositionRef{
					{Position: 7, Verdict: 1, HasVerdict: true},
					{Position: 8},
				}, as[0].Positions)
				assert.Equal(t, []record.ID{3}, as[0].Counterarguments)
			},
		},
		{
			name: "unrelated record types are skipped",
			xml: `<records>
				<record type="person" id="1"><name>Hume</name></record>
				<record type="debate" id="1"><name>Root</name></record>
			</records>`,
			check: func(t *testing.T, snap *record.Snapshot) {
				d, p, a := snap.Len()
				assert.Equal(t, []int{1, 0, 0}, []int{d, p, a})
			},
		},
		{
			name:    "non-integer record id",
			xml:     `<records><record type="debate" id="one"/></records>`,
			wantErr: "invalid id",
		},
		{
			name:    "non-integer reference",
			xml:     `<records><record type="debate" id="2"><larger_debate id="x"/></record></records>`,
			wantErr: "invalid larger_debate reference",
		},
		{
			name:    "non-integer verdict",
			xml:     `<records><record type="argument" id="2"><position id="3" verdict_id="yes"/></record></records>`,
			wantErr: "invalid verdict_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := record.NewSnapshot()
			err := Decode(strings.NewReader(tt.xml), snap)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, snap)
		})
	}
}
