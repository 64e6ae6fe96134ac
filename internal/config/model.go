package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Model is the resolved configuration of one extraction run.
type Model struct {
	// RootDebate is the debate the extraction starts from.
	RootDebate int
	Sources    Sources
	Output     Output
	Graph      Graph
	Storage    Storage
}

// Sources lists the Hypernomicon record files or directories to read.
type Sources struct {
	Paths []string
	// Optional lists the entries of Paths that may be absent. Only the
	// built-in defaults are optional; a path the user names is required.
	Optional []string
}

// IsOptional reports whether path may be missing.
func (s Sources) IsOptional(path string) bool {
	return slices.Contains(s.Optional, path)
}

// Output names where the graph description goes.
type Output struct {
	// JSON is the graph description file, also read back for its layout.
	// A location of the form s3://bucket/key is stored in object storage.
	JSON string
	// HTML is the host page the description is embedded into. Empty
	// disables the page.
	HTML string
	// Open launches the host page (or the JSON when there is no page)
	// after a successful run.
	Open bool
}

// Graph holds the drawing settings.
type Graph struct {
	ArgumentKeyOffset int
	PositionFigure    string
	ArgumentFigure    string
	SuccessVerdict    int
	// AllDebates is the root id that selects every debate.
	AllDebates int
}

// Storage holds the S3 connection used for s3:// outputs.
type Storage struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Default returns the configuration used when nothing else is given. The
// file names match a stock Hypernomicon database and the stock GoJS block
// editor sample.
func Default() Model {
	return Model{
		RootDebate: 1,
		Sources: Sources{
			Paths: []string{"Debates.xml", "Positions.xml", "Arguments.xml"},
			// Hypernomicon databases without sub-debates have no Debates.xml.
			Optional: []string{"Debates.xml"},
		},
		Output: Output{
			JSON: "hyper2gojs.json",
			HTML: "blockEditor.html",
		},
		Graph: Graph{
			ArgumentKeyOffset: 10000,
			PositionFigure:    "RoundedRectangle",
			ArgumentFigure:    "Rectangle",
			SuccessVerdict:    1,
			AllDebates:        1,
		},
	}
}

// Validate reports every problem with m at once.
func (m Model) Validate() error {
	var errs []error
	if m.RootDebate <= 0 {
		errs = append(errs, fmt.Errorf("root debate must be a positive id, got %d", m.RootDebate))
	}
	if len(m.Sources.Paths) == 0 {
		errs = append(errs, errors.New("at least one record source path is required"))
	}
	if strings.TrimSpace(m.Output.JSON) == "" {
		errs = append(errs, errors.New("output JSON location is required"))
	}
	if m.Graph.ArgumentKeyOffset <= 0 {
		errs = append(errs, fmt.Errorf("argument key offset must be positive, got %d", m.Graph.ArgumentKeyOffset))
	}
	if m.Graph.PositionFigure == "" || m.Graph.ArgumentFigure == "" {
		errs = append(errs, errors.New("position and argument figures must not be empty"))
	}
	return errors.Join(errs...)
}
