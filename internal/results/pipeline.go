// File: internal/results/pipeline.go
package results

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/veye-maven/api/schemas"
	"github.com/xkilldash9x/veye-maven/internal/payload"
	"github.com/xkilldash9x/veye-maven/internal/pom"
	"github.com/xkilldash9x/veye-maven/internal/scope"
)

// Options controls a single pipeline run.
type Options struct {
	PomPath      string
	SkipScopes   []string
	TrackPlugins bool
	Strategy     payload.NamingStrategy
}

// Outcome carries everything a command needs after a run.
type Outcome struct {
	Project      *pom.Project
	Dependencies []schemas.Dependency
	Plugins      []schemas.Plugin
	Document     payload.Document
}

// Empty reports whether there is nothing worth submitting.
func (o *Outcome) Empty() bool {
	return o.Document.IsEmpty()
}

// Pipeline turns a project descriptor into a submission document.
type Pipeline struct {
	logger  *zap.Logger
	extract func(path string, props map[string]string) pom.ExtractResult
}

// NewPipeline creates a new project pipeline.
func NewPipeline(logger *zap.Logger) *Pipeline {
	return &Pipeline{
		logger:  logger.Named("pipeline"),
		extract: pom.ExtractPlugins,
	}
}

// Run loads the descriptor, merges direct and managed dependencies, drops excluded
// scopes, optionally extracts build plugins and assembles the document.
//
// A failed plugin extraction is logged and the run continues without plugins.
// A descriptor that is not well-formed yields an empty project model, so the run
// completes with an empty document. Other load failures are returned to the caller.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.logger.Debug("Loading project descriptor", zap.String("pom", opts.PomPath))

	project, err := pom.LoadProject(opts.PomPath)
	switch {
	case errors.Is(err, pom.ErrMalformed):
		p.logger.Warn("Descriptor could not be parsed, continuing with an empty project model",
			zap.String("pom", opts.PomPath), zap.Error(err))
		project = pom.UnparsedProject(opts.PomPath)
	case err != nil:
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	deps := scope.Filter(Merge(project.Dependencies, project.Managed), opts.SkipScopes)
	p.logger.Debug("Collected dependencies",
		zap.Int("direct", len(project.Dependencies)),
		zap.Int("managed", len(project.Managed)),
		zap.Int("kept", len(deps)),
		zap.Strings("skip_scopes", opts.SkipScopes),
	)
	for _, d := range deps {
		p.logger.Debug("Dependency", zap.Stringer("dependency", d), zap.String("scope", d.Scope))
	}

	plugins := []schemas.Plugin{}
	if opts.TrackPlugins {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result := p.extract(opts.PomPath, project.Metadata.Properties)
		if !result.OK() {
			p.logger.Error("Failed to extract build plugins, continuing without them",
				zap.String("pom", opts.PomPath), zap.Error(result.Err))
		}
		plugins = result.Plugins
		p.logger.Debug("Collected build plugins", zap.Int("count", len(plugins)))
	}

	doc := payload.AssembleDependencies(project.Metadata, deps, plugins, opts.Strategy)
	return &Outcome{
		Project:      project,
		Dependencies: deps,
		Plugins:      plugins,
		Document:     doc,
	}, nil
}
