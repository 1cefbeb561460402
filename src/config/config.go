package config

import (
	"github.com/andrewyi/scraper/src/enum"
)

type Site struct {
	URL   string `mapstructure:"url"`
	Tag   string `mapstructure:"tag"`
	Class string `mapstructure:"class"`
}

type Config struct {
	Log struct {
		Context bool   `mapstructure:"context"`
		Level   string `mapstructure:"level"`
	} `mapstructure:"log"`

	Core struct {
		// 为空时使用内置的默认站点
		Sites        []Site `mapstructure:"sites"`
		SeedFilePath string `mapstructure:"seed_file_path"` // 每行: url tag [class]
	} `mapstructure:"core"`

	HTTP struct {
		UserAgent string `mapstructure:"user_agent"`
		Timeout   uint32 `mapstructure:"timeout"` // 秒，0表示使用client默认值
	} `mapstructure:"http"`

	Robots struct {
		Agent        string `mapstructure:"agent"`
		CacheTTL     uint32 `mapstructure:"cache_ttl"` // 秒，0表示每次都重新获取robots.txt
		CacheSize    int    `mapstructure:"cache_size"`
		MissingAllow bool   `mapstructure:"missing_allow"`
	} `mapstructure:"robots"`

	Output struct {
		CSVPath   string `mapstructure:"csv_path"`
		Separator string `mapstructure:"separator"`
	} `mapstructure:"output"`

	Database struct {
		Enabled bool   `mapstructure:"enabled"`
		Driver  string `mapstructure:"driver"`
		URL     string `mapstructure:"url"`
	} `mapstructure:"database"`
}

// 补全未配置的字段
func (c *Config) SetDefaults() {
	if c.Robots.Agent == "" {
		c.Robots.Agent = enum.DefaultAgent
	}
	if c.Robots.CacheSize <= 0 {
		c.Robots.CacheSize = enum.DefaultCacheSize
	}
	if c.Output.CSVPath == "" {
		c.Output.CSVPath = enum.DefaultCSVPath
	}
	if c.Output.Separator == "" {
		c.Output.Separator = enum.DefaultSeparator
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite3"
	}
}
