package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewyi/scraper/src/enum"
)

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	require.Equal(t, enum.DefaultAgent, cfg.Robots.Agent)
	require.Equal(t, enum.DefaultCacheSize, cfg.Robots.CacheSize)
	require.Equal(t, enum.DefaultCSVPath, cfg.Output.CSVPath)
	require.Equal(t, "\n", cfg.Output.Separator)
	require.Equal(t, "sqlite3", cfg.Database.Driver)
	require.False(t, cfg.Database.Enabled)

	cfg = Config{}
	cfg.Robots.Agent = "mybot"
	cfg.Output.Separator = " | "
	cfg.SetDefaults()
	require.Equal(t, "mybot", cfg.Robots.Agent)
	require.Equal(t, " | ", cfg.Output.Separator)
}
