package hnxml

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/vk/hypergraph/internal/ctxlog"
	"github.com/vk/hypergraph/internal/fsutil"
	"github.com/vk/hypergraph/internal/record"
)

type xmlFile struct {
	Records []xmlRecord `xml:"record"`
}

type xmlRecord struct {
	Type             string   `xml:"type,attr"`
	ID               string   `xml:"id,attr"`
	Name             *string  `xml:"name"`
	LargerDebates    []xmlRef `xml:"larger_debate"`
	Debates          []xmlRef `xml:"debate"`
	LargerPositions  []xmlRef `xml:"larger_position"`
	Positions        []xmlRef `xml:"position"`
	Counterarguments []xmlRef `xml:"counterargument"`
}

type xmlRef struct {
	ID      string `xml:"id,attr"`
	Verdict string `xml:"verdict_id,attr"`
}

// ErrMissingSource is returned when a required record path does not exist.
var ErrMissingSource = errors.New("record source not found")

// Source is one record path to read.
type Source struct {
	Path string
	// Optional sources may be absent; they are skipped with a warning.
	Optional bool
}

// Read loads every record from sources into one snapshot. A source may be a
// single file or a directory, in which case all .xml files below it are
// read. A missing required source or a file that cannot be parsed fails the
// whole read, so a partial database never reaches the graph.
func Read(ctx context.Context, sources ...Source) (*record.Snapshot, error) {
	logger := ctxlog.FromContext(ctx)
	snap := record.NewSnapshot()

	files, err := resolveFiles(sources)
	if err != nil {
		return nil, err
	}
	for _, missing := range files.missing {
		logger.Warn("Optional record file not found, skipping.", "path", missing)
	}

	for _, path := range files.found {
		if err := readFile(path, snap); err != nil {
			return nil, err
		}
		logger.Debug("Record file read.", "path", path)
	}

	d, p, a := snap.Len()
	logger.Debug("Record store loaded.", "files", len(files.found), "debates", d, "positions", p, "arguments", a)
	return snap, nil
}

type fileSet struct {
	found   []string
	missing []string
}

func resolveFiles(sources []Source) (fileSet, error) {
	var set fileSet
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		set.found = append(set.found, p)
	}

	for _, src := range sources {
		path := src.Path
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				if !src.Optional {
					return set, fmt.Errorf("%w: %s", ErrMissingSource, path)
				}
				set.missing = append(set.missing, path)
				continue
			}
			return set, fmt.Errorf("error accessing record path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".xml")
		if err != nil {
			return set, fmt.Errorf("error scanning record directory %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return set, nil
}

func readFile(path string, snap *record.Snapshot) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open record file %s: %w", path, err)
	}
	defer f.Close()

	if err := Decode(f, snap); err != nil {
		return fmt.Errorf("failed to read record file %s: %w", path, err)
	}
	return nil
}

// Decode parses one XML document from r and appends its debate, position and
// argument records to snap.
func Decode(r io.Reader, snap *record.Snapshot) error {
	var doc xmlFile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("malformed XML: %w", err)
	}

	for i, rec := range doc.Records {
		kind, ok := record.ParseKind(rec.Type)
		if !ok {
			continue
		}
		if err := appendRecord(snap, kind, rec); err != nil {
			return fmt.Errorf("record #%d (type %q): %w", i+1, rec.Type, err)
		}
	}
	return nil
}

func appendRecord(snap *record.Snapshot, kind record.Kind, rec xmlRecord) error {
	id, err := parseID(rec.ID)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	var name record.Text
	if rec.Name != nil {
		name = record.NewText(strings.TrimSpace(*rec.Name))
	}

	switch kind {
	case record.KindDebate:
		larger, err := parseRefs("larger_debate", rec.LargerDebates)
		if err != nil {
			return err
		}
		snap.AddDebate(record.Debate{ID: id, Name: name, LargerDebates: larger})

	case record.KindPosition:
		debates, err := parseRefs("debate", rec.Debates)
		if err != nil {
			return err
		}
		larger, err := parseRefs("larger_position", rec.LargerPositions)
		if err != nil {
			return err
		}
		snap.AddPosition(record.Position{ID: id, Name: name, Debates: debates, LargerPositions: larger})

	case record.KindArgument:
		positions, err := parsePositionRefs(rec.Positions)
		if err != nil {
			return err
		}
		counters, err := parseRefs("counterargument", rec.Counterarguments)
		if err != nil {
			return err
		}
		snap.AddArgument(record.Argument{ID: id, Name: name, Positions: positions, Counterarguments: counters})
	}
	return nil
}

func parseID(s string) (record.ID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return record.ID(n), nil
}

// parseRefs converts reference elements to ids. Elements with an empty id
// attribute carry no edge and are dropped.
func parseRefs(elem string, refs []xmlRef) ([]record.ID, error) {
	var ids []record.ID
	for _, ref := range refs {
		if strings.TrimSpace(ref.ID) == "" {
			continue
		}
		id, err := parseID(ref.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid %s reference: %w", elem, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parsePositionRefs(refs []xmlRef) ([]record.PositionRef, error) {
	var out []record.PositionRef
	for _, ref := range refs {
		if strings.TrimSpace(ref.ID) == "" {
			continue
		}
		id, err := parseID(ref.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid position reference: %w", err)
		}
		pr := record.PositionRef{Position: id}
		if v := strings.TrimSpace(ref.Verdict); v != "" {
			verdict, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("invalid verdict_id on position %d: %w", id, err)
			}
			pr.Verdict = verdict
			pr.HasVerdict = true
		}
		out = append(out, pr)
	}
	return out, nil
}
