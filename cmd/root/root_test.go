package root_test

import (
	"testing"

	"fjacquet/finny-analyzer/cmd/root"
	"fjacquet/finny-analyzer/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "finny", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "receipt OCR text")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
		{"format", "f"},
		{"clustering", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestRootCommand_Run(t *testing.T) {
	assert.NotPanics(t, func() {
		root.Cmd.Run(&cobra.Command{}, []string{})
	})
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, root.ApplyFlags(cfg, root.CommonFlags{Format: "csv", Clustering: "transitive"}))
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, config.ClusteringTransitive, cfg.Grouping.Clustering)

	cfg = config.Default()
	require.NoError(t, root.ApplyFlags(cfg, root.CommonFlags{}))
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)

	assert.Error(t, root.ApplyFlags(config.Default(), root.CommonFlags{Format: "pdf"}))
	assert.Error(t, root.ApplyFlags(config.Default(), root.CommonFlags{Clustering: "kmeans"}))
}

func TestGetContainer_NotInitialized(t *testing.T) {
	saved := root.AppContainer
	defer func() { root.AppContainer = saved }()

	root.AppContainer = nil
	_, err := root.GetContainer()
	assert.Error(t, err)
}

func TestRootCommand_PersistentPreRunBuildsContainer(t *testing.T) {
	t.Chdir(t.TempDir())
	saved := root.AppContainer
	defer func() { root.AppContainer = saved }()

	require.NoError(t, root.Cmd.PersistentPreRunE(root.Cmd, nil))
	c, err := root.GetContainer()
	require.NoError(t, err)
	assert.NotNil(t, c.GetGroupingEngine())
}
