package builder

import (
	"context"

	"github.com/vk/hypergraph/internal/closure"
	"github.com/vk/hypergraph/internal/ctxlog"
	"github.com/vk/hypergraph/internal/gojs"
	"github.com/vk/hypergraph/internal/nodeid"
	"github.com/vk/hypergraph/internal/record"
)

// Default node figures.
const (
	DefaultPositionFigure = "RoundedRectangle"
	DefaultArgumentFigure = "Rectangle"
)

// DefaultSuccessVerdict is the verdict_id Hypernomicon uses for an argument
// that succeeds in supporting its position.
const DefaultSuccessVerdict = 1

// Options controls how records are drawn.
type Options struct {
	Keys           nodeid.Namespacer
	PositionFigure string
	ArgumentFigure string
	SuccessVerdict int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Keys:           nodeid.New(nodeid.DefaultOffset),
		PositionFigure: DefaultPositionFigure,
		ArgumentFigure: DefaultArgumentFigure,
		SuccessVerdict: DefaultSuccessVerdict,
	}
}

// Stats summarises a Build call for logging.
type Stats struct {
	Nodes         int
	Links         int
	Unnamed       int
	OutOfRangeIDs int
}

// Build maps the in-scope records of st onto a fresh graph description. The
// returned model has no layout; see package layout for carrying it over.
func Build(ctx context.Context, st record.Store, scope closure.Scope, opts Options) (*gojs.Model, Stats) {
	logger := ctxlog.FromContext(ctx)
	b := &graphBuilder{opts: opts, model: gojs.New()}

	for _, p := range st.Positions() {
		if scope.Positions.Has(p.ID) {
			b.positionNode(ctx, p)
		}
	}
	for _, p := range st.Positions() {
		if scope.Positions.Has(p.ID) {
			b.positionLinks(p, scope)
		}
	}
	for _, a := range st.Arguments() {
		if scope.Arguments.Has(a.ID) {
			b.argumentNode(ctx, a)
		}
	}
	for _, a := range st.Arguments() {
		if scope.Arguments.Has(a.ID) {
			b.argumentLinks(a, scope)
		}
	}

	b.stats.Nodes = len(b.model.Nodes)
	b.stats.Links = len(b.model.Links)
	if b.stats.OutOfRangeIDs > 0 {
		logger.Warn("Position ids reach into the argument key range; node keys may collide.",
			"count", b.stats.OutOfRangeIDs, "offset", opts.Keys.Offset)
	}
	logger.Debug("Graph assembled.", "nodes", b.stats.Nodes, "links", b.stats.Links, "unnamed", b.stats.Unnamed)
	return b.model, b.stats
}

type graphBuilder struct {
	opts  Options
	model *gojs.Model
	stats Stats
}

func (b *graphBuilder) positionNode(ctx context.Context, p record.Position) {
	if !b.opts.Keys.Fits(record.KindPosition, p.ID) {
		b.stats.OutOfRangeIDs++
	}
	if !p.Name.Valid {
		b.stats.Unnamed++
		ctxlog.FromContext(ctx).Debug("Position has no name, no node emitted.", "id", p.ID)
		return
	}
	b.model.Nodes = append(b.model.Nodes, gojs.Node{
		Key:    b.opts.Keys.Position(p.ID),
		Text:   p.Name.Value,
		Figure: b.opts.PositionFigure,
	})
}

func (b *graphBuilder) positionLinks(p record.Position, scope closure.Scope) {
	for _, larger := range p.LargerPositions {
		if !scope.Positions.Has(larger) {
			continue
		}
		b.model.Links = append(b.model.Links, gojs.Link{
			From: b.opts.Keys.Position(larger),
			To:   b.opts.Keys.Position(p.ID),
		})
	}
}

func (b *graphBuilder) argumentNode(ctx context.Context, a record.Argument) {
	if !a.Name.Valid {
		b.stats.Unnamed++
		ctxlog.FromContext(ctx).Debug("Argument has no name, no node emitted.", "id", a.ID)
		return
	}
	b.model.Nodes = append(b.model.Nodes, gojs.Node{
		Key:    b.opts.Keys.Argument(a.ID),
		Text:   a.Name.Value,
		Figure: b.opts.ArgumentFigure,
	})
}

func (b *graphBuilder) argumentLinks(a record.Argument, scope closure.Scope) {
	for _, ref := range a.Positions {
		if !scope.Positions.Has(ref.Position) {
			continue
		}
		// Support flows from the position to the argument.
		b.model.Links = append(b.model.Links, gojs.Link{
			From:  b.opts.Keys.Position(ref.Position),
			To:    b.opts.Keys.Argument(a.ID),
			Color: b.verdictColor(ref),
		})
	}
	for _, counter := range a.Counterarguments {
		if !scope.Arguments.Has(counter) {
			continue
		}
		b.model.Links = append(b.model.Links, gojs.Link{
			From:  b.opts.Keys.Argument(counter),
			To:    b.opts.Keys.Argument(a.ID),
			Color: gojs.ColorRed,
		})
	}
}

func (b *graphBuilder) verdictColor(ref record.PositionRef) string {
	if ref.HasVerdict && ref.Verdict == b.opts.SuccessVerdict {
		return gojs.ColorGreen
	}
	return gojs.ColorRed
}
