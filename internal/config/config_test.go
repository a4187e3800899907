package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsketch/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphsketch.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 9, cfg.Solver.ExactTourLimit)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
[log]
level = "debug"

[graph]
bidirectional = true

[solver]
exact_tour_limit = 7
matching = "exact"
walk = "greedy"
expand_deadheads = true

[server]
addr = "127.0.0.1:9000"
read_timeout = "3s"
`)
	t.Setenv("GRAPHSKETCH_SOLVER_EXACT_TOUR_LIMIT", "5")
	t.Setenv("GRAPHSKETCH_SOLVER_DIJKSTRA_HEAP", "true")
	t.Setenv("GRAPHSKETCH_SERVER_WRITE_TIMEOUT", "2m")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.True(t, cfg.Graph.Bidirectional)
	assert.Equal(t, 5, cfg.Solver.ExactTourLimit, "environment wins over the file")
	assert.Equal(t, "exact", cfg.Solver.Matching)
	assert.Equal(t, "greedy", cfg.Solver.Walk)
	assert.True(t, cfg.Solver.ExpandDeadheads)
	assert.True(t, cfg.Solver.DijkstraHeap)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]struct {
		file string
		env  map[string]string
	}{
		"unknown key":       {file: "[solver]\nmatchin = \"exact\"\n"},
		"broken toml":       {file: "[solver\n"},
		"unknown matching":  {file: "[solver]\nmatching = \"blossom\"\n"},
		"unknown walk":      {env: map[string]string{"GRAPHSKETCH_SOLVER_WALK": "fleury"}},
		"unknown level":     {env: map[string]string{"GRAPHSKETCH_LOG_LEVEL": "loud"}},
		"zero limit":        {file: "[solver]\nexact_tour_limit = 0\n"},
		"limit above guard": {env: map[string]string{"GRAPHSKETCH_SOLVER_EXACT_TOUR_LIMIT": "12"}},
		"bad bool":          {env: map[string]string{"GRAPHSKETCH_GRAPH_BIDIRECTIONAL": "maybe"}},
		"bad duration":      {env: map[string]string{"GRAPHSKETCH_SERVER_READ_TIMEOUT": "soon"}},
		"negative timeout":  {env: map[string]string{"GRAPHSKETCH_SERVER_SHUTDOWN_TIMEOUT": "-1s"}},
		"missing file":      {file: "\x00missing"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			switch {
			case tc.file == "\x00missing":
				path = filepath.Join(t.TempDir(), "nope.toml")
			case tc.file != "":
				path = writeFile(t, tc.file)
			}
			_, err := config.Load(path)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
