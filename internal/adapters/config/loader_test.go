package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/contribulate/dagster/internal/adapters/config"
	"github.com/contribulate/dagster/internal/core/domain"
	"github.com/contribulate/dagster/internal/core/ports/mocks"
)

func newTestLoader(t *testing.T, files map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return &config.Loader{
		FS:     config.NewMapFSAdapter("/work", fsys),
		Logger: mockLogger,
	}
}

func TestLoader_Load(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"definitions.yaml": `
version: "1"
assets:
  raw_events:
    automation:
      onCron: "0 * * * *"
  daily_rollup:
    dependsOn: [raw_events]
    partitions:
      daily:
        startDate: "2024-01-01"
    automation:
      and:
        - missing: true
        - eager: true
`,
	})

	graph, err := loader.Load("/work/definitions.yaml")
	require.NoError(t, err)
	require.Equal(t, 2, graph.Len())

	raw, err := graph.Spec(domain.NewAssetKey("raw_events"))
	require.NoError(t, err)
	require.NotNil(t, raw.Automation)
	assert.Equal(t, domain.KindOnCron, raw.Automation.Kind)
	assert.Equal(t, "0 * * * *", raw.Automation.Schedule)

	rollup, err := graph.Spec(domain.NewAssetKey("daily_rollup"))
	require.NoError(t, err)
	assert.Equal(t, []domain.AssetKey{raw.Key}, rollup.Deps)
	require.NotNil(t, rollup.Partitions)
	assert.Contains(t, rollup.Partitions.Identity(), "daily")
	require.NotNil(t, rollup.Automation)
	assert.Equal(t, domain.KindAnd, rollup.Automation.Kind)
	require.Len(t, rollup.Automation.Children, 2)
	assert.Equal(t, domain.KindMissing, rollup.Automation.Children[0].Kind)
	assert.Equal(t, domain.KindEager, rollup.Automation.Children[1].Kind)
}

func TestLoader_Load_StaticPartitions(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"definitions.yaml": `
assets:
  regions:
    partitions:
      static: [eu, us]
    automation:
      missing: true
`,
	})

	graph, err := loader.Load("/work/definitions.yaml")
	require.NoError(t, err)

	spec, err := graph.Spec(domain.NewAssetKey("regions"))
	require.NoError(t, err)
	require.NotNil(t, spec.Partitions)
	ok, err := spec.Partitions.Contains(domain.NewInternedString("eu"), time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "static[eu,us]", spec.Partitions.Identity())
}

func TestLoader_Load_MissingDependency(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"definitions.yaml": `
assets:
  downstream:
    dependsOn: [nope]
`,
	})

	_, err := loader.Load("/work/definitions.yaml")
	require.ErrorIs(t, err, domain.ErrMissingDependency)
}

func TestLoader_Load_Cycle(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"definitions.yaml": `
assets:
  a:
    dependsOn: [b]
  b:
    dependsOn: [a]
`,
	})

	_, err := loader.Load("/work/definitions.yaml")
	require.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestLoader_Load_InvalidSchedule(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"definitions.yaml": `
assets:
  a:
    automation:
      onCron: "not a schedule"
`,
	})

	_, err := loader.Load("/work/definitions.yaml")
	require.ErrorIs(t, err, domain.ErrInvalidSchedule)
}

func TestLoader_Load_AmbiguousConditionNode(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"definitions.yaml": `
assets:
  a:
    automation:
      eager: true
      missing: true
`,
	})

	_, err := loader.Load("/work/definitions.yaml")
	require.ErrorIs(t, err, domain.ErrInvalidCondition)
}

func TestLoader_Load_InvalidAssetName(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"definitions.yaml": `
assets:
  "bad name!": {}
`,
	})

	_, err := loader.Load("/work/definitions.yaml")
	require.ErrorIs(t, err, domain.ErrInvalidAssetKey)
}

func TestLoader_Load_UnparseableYAML(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"definitions.yaml": "assets: [not: a: map",
	})

	_, err := loader.Load("/work/definitions.yaml")
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := newTestLoader(t, map[string]string{})

	_, err := loader.Load("/work/definitions.yaml")
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Discover(t *testing.T) {
	rootDir := t.TempDir()
	nested := filepath.Join(rootDir, "jobs", "etl")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	defsPath := filepath.Join(rootDir, domain.DefinitionsFileName)
	require.NoError(t, os.WriteFile(defsPath, []byte("assets: {}\n"), domain.FilePerm))

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(mockLogger)

	found, err := loader.Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, defsPath, found)
}

func TestLoader_Discover_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(mockLogger)

	_, err := loader.Discover(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}
