// File: cmd/helpers_test.go
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xkilldash9x/veye-maven/api/schemas"
	"github.com/xkilldash9x/veye-maven/internal/config"
	"github.com/xkilldash9x/veye-maven/internal/observability"
)

const demoPom = `<project>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <version>1.0</version>
  <name>Demo Service</name>
  <dependencies>
    <dependency><groupId>junit</groupId><artifactId>junit</artifactId><version>4.13.2</version><scope>test</scope></dependency>
    <dependency><groupId>org.slf4j</groupId><artifactId>slf4j-api</artifactId><version>2.0.9</version></dependency>
  </dependencies>
  <build>
    <plugins>
      <plugin><groupId>org.apache.maven.plugins</groupId><artifactId>maven-jar-plugin</artifactId><version>3.3.0</version></plugin>
    </plugins>
  </build>
</project>
`

const emptyPom = `<project>
  <groupId>com.example</groupId>
  <artifactId>nothing</artifactId>
  <version>1.0</version>
</project>
`

// newTestConfig returns the default configuration pointed at a pom with content
// in a fresh temporary directory.
func newTestConfig(t *testing.T, pomContent string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	pomPath := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(pomPath, []byte(pomContent), 0o644))

	cfg := config.NewDefaultConfig()
	cfg.ProjectCfg.Pom = pomPath
	cfg.ProjectCfg.Output = filepath.Join(dir, "target", "pom.json")
	cfg.ProjectCfg.PropertiesFile = filepath.Join(dir, "src", "qa", "resources", "versioneye.properties")
	cfg.APICfg.BaseURL = "http://veye.test"
	cfg.APICfg.Key = "secret"
	return cfg
}

// newObservedLogger returns a logger recording info entries and above.
func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func messages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.All() {
		out = append(out, e.Message)
	}
	return out
}

// resetGlobals clears logger state left behind by PersistentPreRunE.
func resetGlobals(t *testing.T) {
	t.Helper()
	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)
}

// -- Service Fakes --

type fakeService struct {
	resp      *schemas.ProjectResponse
	err       error
	created   [][]byte
	updated   [][]byte
	updatedID string
}

func (f *fakeService) CreateProject(ctx context.Context, document []byte) (*schemas.ProjectResponse, error) {
	f.created = append(f.created, document)
	return f.resp, f.err
}

func (f *fakeService) UpdateProject(ctx context.Context, projectID string, document []byte) (*schemas.ProjectResponse, error) {
	f.updated = append(f.updated, document)
	f.updatedID = projectID
	return f.resp, f.err
}

type fakeProvider struct {
	svc   *fakeService
	err   error
	calls int
}

func (p *fakeProvider) Create(cfg config.Interface, logger *zap.Logger) (projectService, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.svc, nil
}
