// File: cmd/project.go
package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/veye-maven/api/schemas"
	"github.com/xkilldash9x/veye-maven/internal/config"
	"github.com/xkilldash9x/veye-maven/internal/network"
	"github.com/xkilldash9x/veye-maven/internal/payload"
	"github.com/xkilldash9x/veye-maven/internal/reporting"
	"github.com/xkilldash9x/veye-maven/internal/results"
	"github.com/xkilldash9x/veye-maven/internal/versioneye"
)

// projectService is the remote side of create and update.
type projectService interface {
	CreateProject(ctx context.Context, document []byte) (*schemas.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID string, document []byte) (*schemas.ProjectResponse, error)
}

// serviceProvider builds the project service from configuration, so tests can
// substitute a fake.
type serviceProvider interface {
	Create(cfg config.Interface, logger *zap.Logger) (projectService, error)
}

type defaultServiceProvider struct{}

// NewServiceProvider returns the provider talking to the configured service.
func NewServiceProvider() serviceProvider {
	return &defaultServiceProvider{}
}

// Create resolves the API key and wires the HTTP client into a service client.
func (p *defaultServiceProvider) Create(cfg config.Interface, logger *zap.Logger) (projectService, error) {
	key, err := cfg.ResolveAPIKey()
	if err != nil {
		return nil, err
	}

	api := cfg.API()
	proxy, err := api.Proxy()
	if err != nil {
		return nil, err
	}
	clientCfg := network.NewDefaultClientConfig()
	clientCfg.ProxyURL = proxy
	clientCfg.RequestTimeout = api.Timeout
	clientCfg.IgnoreTLSErrors = api.IgnoreTLSErrors
	clientCfg.Logger = logger.Named("httpclient")

	return versioneye.NewClient(network.NewClient(clientCfg), versioneye.Config{
		BaseURL: api.BaseURL,
		APIPath: api.Path,
		APIKey:  key,
	}, logger), nil
}

// buildDocument runs the pipeline with the project settings from cfg.
func buildDocument(ctx context.Context, logger *zap.Logger, cfg config.Interface) (*results.Outcome, error) {
	project := cfg.Project()
	strategy, err := project.Strategy()
	if err != nil {
		return nil, err
	}

	return results.NewPipeline(logger).Run(ctx, results.Options{
		PomPath:      project.Pom,
		SkipScopes:   project.ExcludedScopes(),
		TrackPlugins: project.TrackPlugins,
		Strategy:     strategy,
	})
}

// encodeOutcome prints the dependency list and encodes the document. It returns
// nil data, after printing the empty report, when there is nothing to submit.
func encodeOutcome(logger *zap.Logger, outcome *results.Outcome) ([]byte, error) {
	if outcome.Empty() {
		printEmpty(logger, outcome)
		return nil, nil
	}

	reporting.Print(logger, reporting.RenderDependencyList(outcome.Dependencies))
	data, err := payload.Encode(outcome.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project document: %w", err)
	}
	return data, nil
}

func printEmpty(logger *zap.Logger, outcome *results.Outcome) {
	meta := outcome.Project.Metadata
	reporting.Print(logger, reporting.RenderEmpty(meta.GroupID, meta.ArtifactID))
}
