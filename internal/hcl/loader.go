package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/hypergraph/internal/config"
	"github.com/vk/hypergraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	environ func() []string
}

// NewLoader creates a loader whose env object reflects os.Environ.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// NewLoaderWithEnv creates a loader whose env object holds exactly env.
func NewLoaderWithEnv(env map[string]string) *Loader {
	return &Loader{environ: func() []string {
		out := make([]string, 0, len(env))
		for k, v := range env {
			out = append(out, k+"="+v)
		}
		return out
	}}
}

// Load parses each project file and applies it to a copy of base.
func (l *Loader) Load(ctx context.Context, base config.Model, paths ...string) (config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := base
	model.Sources.Paths = append([]string(nil), base.Sources.Paths...)
	model.Sources.Optional = append([]string(nil), base.Sources.Optional...)

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return config.Model{}, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(file.Body, evalCtx, &root); diags.HasErrors() {
			return config.Model{}, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}

		if err := apply(&model, &root, filepath.Dir(path)); err != nil {
			return config.Model{}, fmt.Errorf("invalid HCL file %s: %w", path, err)
		}
		logger.Debug("Project file applied.", "path", path)
	}

	logger.Debug("HCL loading complete.", "root_debate", model.RootDebate, "sources", len(model.Sources.Paths))
	return model, nil
}

// evalContext exposes the environment as the env object.
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range l.environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{Variables: map[string]cty.Value{"env": env}}
}

func apply(m *config.Model, root *fileRoot, dir string) error {
	if root.RootDebate != nil {
		m.RootDebate = *root.RootDebate
	}
	if root.Source != nil && root.Source.Paths != nil {
		m.Sources.Paths = m.Sources.Paths[:0]
		m.Sources.Optional = nil
		for _, p := range root.Source.Paths {
			m.Sources.Paths = append(m.Sources.Paths, resolve(dir, p))
		}
	}
	if o := root.Output; o != nil {
		if o.JSON != nil {
			m.Output.JSON = resolve(dir, *o.JSON)
		}
		if o.HTML != nil {
			m.Output.HTML = resolve(dir, *o.HTML)
		}
		if o.Open != nil {
			m.Output.Open = *o.Open
		}
	}
	if g := root.Graph; g != nil {
		setInt(&m.Graph.ArgumentKeyOffset, g.ArgumentKeyOffset)
		setString(&m.Graph.PositionFigure, g.PositionFigure)
		setString(&m.Graph.ArgumentFigure, g.ArgumentFigure)
		setInt(&m.Graph.SuccessVerdict, g.SuccessVerdict)
		setInt(&m.Graph.AllDebates, g.AllDebates)
	}
	for _, s := range root.Storage {
		if s.Kind != "s3" {
			return fmt.Errorf("unsupported storage kind %q (only \"s3\" is available)", s.Kind)
		}
		setString(&m.Storage.Endpoint, s.Endpoint)
		setString(&m.Storage.Region, s.Region)
		setString(&m.Storage.AccessKey, s.AccessKey)
		setString(&m.Storage.SecretKey, s.SecretKey)
		if s.UseSSL != nil {
			m.Storage.UseSSL = *s.UseSSL
		}
	}
	return nil
}

// resolve makes a relative local path relative to dir. Empty values and
// object storage locations are returned unchanged.
func resolve(dir, p string) string {
	if p == "" || strings.HasPrefix(p, "s3://") || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
