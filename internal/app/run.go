package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vk/hypergraph/internal/blobstore"
	"github.com/vk/hypergraph/internal/builder"
	"github.com/vk/hypergraph/internal/closure"
	"github.com/vk/hypergraph/internal/ctxlog"
	"github.com/vk/hypergraph/internal/gojs"
	"github.com/vk/hypergraph/internal/hnxml"
	"github.com/vk/hypergraph/internal/hostdoc"
	"github.com/vk/hypergraph/internal/layout"
	"github.com/vk/hypergraph/internal/nodeid"
	"github.com/vk/hypergraph/internal/record"
)

// Run performs one extraction. Nothing is written unless every step up to
// and including rendering the host page succeeds, and a failed write puts
// the previous graph description back.
func (a *App) Run(ctx context.Context) error {
	runID, err := gonanoid.New(12)
	if err != nil {
		return fmt.Errorf("failed to generate run id: %w", err)
	}
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "run_id", runID)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	m := a.model
	sources := make([]hnxml.Source, len(m.Sources.Paths))
	for i, p := range m.Sources.Paths {
		sources[i] = hnxml.Source{Path: p, Optional: m.Sources.IsOptional(p)}
	}
	store, err := hnxml.Read(ctx, sources...)
	if err != nil {
		return fmt.Errorf("failed to read record store: %w", err)
	}

	root := record.ID(m.RootDebate)
	scope, err := closure.Compute(ctx, store, root, closure.Options{AllDebates: record.ID(m.Graph.AllDebates)})
	if err != nil {
		return fmt.Errorf("failed to compute closure: %w", err)
	}
	logger.Info("Closure computed.", "root", root,
		"debates", len(scope.Debates), "positions", len(scope.Positions), "arguments", len(scope.Arguments))
	logger.Debug("Debates in scope.", "ids", scope.Debates.Sorted())

	keys := nodeid.New(m.Graph.ArgumentKeyOffset)
	fresh, stats := builder.Build(ctx, store, scope, builder.Options{
		Keys:           keys,
		PositionFigure: m.Graph.PositionFigure,
		ArgumentFigure: m.Graph.ArgumentFigure,
		SuccessVerdict: m.Graph.SuccessVerdict,
	})
	logger.Info("Graph built.", "nodes", stats.Nodes, "links", stats.Links, "unnamed", stats.Unnamed)

	jsonLoc, err := blobstore.ParseLocation(m.Output.JSON)
	if err != nil {
		return fmt.Errorf("invalid JSON output location: %w", err)
	}
	fresh.Filename = jsonLoc.String()

	jsonStore, err := a.openStore(jsonLoc, a.s3Config())
	if err != nil {
		return fmt.Errorf("failed to open storage for %s: %w", jsonLoc, err)
	}
	saved, prior, err := loadSaved(ctx, jsonStore, jsonLoc)
	if err != nil {
		return err
	}

	var page *pendingPage
	if m.Output.HTML != "" {
		page, err = a.loadPage(ctx, m.Output.HTML)
		if err != nil {
			return err
		}
		if saved == nil && !page.seeded {
			saved = embeddedLayout(ctx, page)
		}
	}

	merged, rep := layout.Merge(fresh, saved)
	logMerge(logger, keys, rep)

	data, err := gojs.Marshal(merged)
	if err != nil {
		return err
	}

	if a.dryRun {
		logger.Info("Dry run, nothing written.")
		_, err := a.outW.Write(data)
		return err
	}

	if page != nil {
		page.content, err = hostdoc.Splice(page.current, data)
		if err != nil {
			return fmt.Errorf("host document %s: %w", page.loc, err)
		}
	}

	if err := jsonStore.Put(ctx, jsonLoc.Name, data); err != nil {
		return fmt.Errorf("failed to write graph description: %w", err)
	}
	logger.Info("Graph description written.", "location", jsonLoc.String())

	opened := jsonLoc
	if page != nil {
		if err := page.store.Put(ctx, page.loc.Name, page.content); err != nil {
			err = fmt.Errorf("failed to write host document: %w", err)
			return errors.Join(err, restore(ctx, jsonStore, jsonLoc, prior))
		}
		logger.Info("Host document written.", "location", page.loc.String(), "seeded", page.seeded)
		opened = page.loc
	}

	if m.Output.Open {
		a.open(ctx, opened)
	}
	logger.Debug("App.Run method finished.")
	return nil
}

// loadSaved reads the previous description and returns it decoded and raw.
// A missing document means there is no layout yet; an unreadable one fails
// the run so the user's layout is never silently thrown away.
func loadSaved(ctx context.Context, st blobstore.Store, loc blobstore.Location) (*gojs.Model, []byte, error) {
	logger := ctxlog.FromContext(ctx)
	data, err := st.Get(ctx, loc.Name)
	if errors.Is(err, blobstore.ErrNotExist) {
		logger.Info("No saved graph found, starting without layout.", "location", loc.String())
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read saved graph %s: %w", loc, err)
	}
	saved, err := gojs.Unmarshal(data)
	if err != nil {
		return nil, nil, fmt.Errorf("saved graph %s is unusable: %w", loc, err)
	}
	logger.Debug("Saved graph loaded.", "nodes", len(saved.Nodes), "links", len(saved.Links))
	return saved, data, nil
}

// restore puts the previous description back after a failed run. A nil
// prior means there was none, so the new one is removed.
func restore(ctx context.Context, st blobstore.Store, loc blobstore.Location, prior []byte) error {
	logger := ctxlog.FromContext(ctx)
	var err error
	if prior == nil {
		err = st.Delete(ctx, loc.Name)
	} else {
		err = st.Put(ctx, loc.Name, prior)
	}
	if err != nil {
		logger.Error("Failed to restore the previous graph description.", "location", loc.String(), "error", err)
		return fmt.Errorf("failed to restore %s: %w", loc, err)
	}
	logger.Info("Previous graph description restored.", "location", loc.String())
	return nil
}

type pendingPage struct {
	store   blobstore.Store
	loc     blobstore.Location
	current []byte
	content []byte
	seeded  bool
}

// loadPage reads the host page, falling back to the built-in template when
// it does not exist yet.
func (a *App) loadPage(ctx context.Context, location string) (*pendingPage, error) {
	loc, err := blobstore.ParseLocation(location)
	if err != nil {
		return nil, fmt.Errorf("invalid HTML output location: %w", err)
	}
	st, err := a.openStore(loc, a.s3Config())
	if err != nil {
		return nil, fmt.Errorf("failed to open storage for %s: %w", loc, err)
	}

	p := &pendingPage{store: st, loc: loc}
	p.current, err = st.Get(ctx, loc.Name)
	switch {
	case errors.Is(err, blobstore.ErrNotExist):
		ctxlog.FromContext(ctx).Info("Host document not found, seeding from template.", "location", loc.String())
		p.current = hostdoc.Template()
		p.seeded = true
	case err != nil:
		return nil, fmt.Errorf("failed to read host document %s: %w", loc, err)
	}
	return p, nil
}

// embeddedLayout recovers a layout from the model stored in the host page,
// for when the description file was lost but the page survived. The page
// may hold a model this tool did not write, so problems only disable it.
func embeddedLayout(ctx context.Context, page *pendingPage) *gojs.Model {
	logger := ctxlog.FromContext(ctx)
	text, err := hostdoc.Extract(page.current)
	if err != nil || strings.TrimSpace(text) == "" {
		return nil
	}
	saved, err := gojs.Unmarshal([]byte(text))
	if err != nil {
		logger.Warn("Ignoring the model embedded in the host document.", "location", page.loc.String(), "error", err)
		return nil
	}
	logger.Info("Using the layout embedded in the host document.", "location", page.loc.String(), "nodes", len(saved.Nodes))
	return saved
}

func (a *App) open(ctx context.Context, loc blobstore.Location) {
	logger := ctxlog.FromContext(ctx)
	if loc.IsRemote() {
		logger.Warn("Cannot open a document stored in object storage.", "location", loc.String())
		return
	}
	if err := a.opener.Open(ctx, loc.Name); err != nil {
		logger.Warn("Failed to open viewer.", "error", err)
		return
	}
	logger.Info("Viewer opened.", "path", loc.Name)
}

func (a *App) s3Config() blobstore.S3Config {
	s := a.model.Storage
	return blobstore.S3Config{
		Endpoint:  s.Endpoint,
		Region:    s.Region,
		AccessKey: s.AccessKey,
		SecretKey: s.SecretKey,
		UseSSL:    s.UseSSL,
	}
}

func logMerge(logger *slog.Logger, keys nodeid.Namespacer, rep layout.Report) {
	logger.Info("Layout merged.",
		"placed_nodes", rep.NodesPlaced, "routed_links", rep.LinksRouted,
		"new_nodes", rep.NewNodes, "dropped_nodes", len(rep.DroppedKeys))
	for _, k := range rep.DroppedKeys {
		kind, id := keys.Resolve(k)
		logger.Debug("Saved node no longer in the graph, its layout is discarded.", "key", k, "kind", kind.String(), "id", id)
	}
	if len(rep.AmbiguousPairs) > 0 {
		logger.Warn("Saved graph has duplicate links; the first one's routing was used.",
			"pairs", fmt.Sprint(rep.AmbiguousPairs))
	}
}
