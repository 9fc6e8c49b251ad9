package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/YKarmar/AdmissionsDashboard/internal/logging"
)

// DefaultPath 未指定时使用的配置文件路径
const DefaultPath = "configs/config.yaml"

// 汇总数据来源
const (
	SummaryDerived  = "derived"
	SummaryAuthored = "authored"
)

type Config struct {
	Dashboard struct {
		Owner      string `yaml:"owner"`
		Title      string `yaml:"title"`
		Subtitle   string `yaml:"subtitle"`
		Stylesheet string `yaml:"stylesheet"`
	} `yaml:"dashboard"`
	Summary struct {
		Source   string `yaml:"source"` // derived 或 authored
		Authored struct {
			Accepted         int    `yaml:"accepted"`
			Pending          int    `yaml:"pending"`
			ScholarshipTotal string `yaml:"scholarship_total"`
		} `yaml:"authored"`
	} `yaml:"summary"`
	Server struct {
		Addr         string `yaml:"addr"`
		DocumentsDir string `yaml:"documents_dir"`
	} `yaml:"server"`
	Export struct {
		File       string   `yaml:"file"`
		StatsFile  string   `yaml:"stats_file"`
		DigestFile string   `yaml:"digest_file"`
		DigestFrom string   `yaml:"digest_from"`
		DigestTo   []string `yaml:"digest_to"`
	} `yaml:"export"`
	Logging struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
	} `yaml:"logging"`
}

// Default 返回没有配置文件时使用的默认配置
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// Load 加载配置文件并替换环境变量，填充默认值
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	content := expandEnvVars(string(b))

	var cfg Config
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault 加载配置文件，文件不存在时使用默认配置
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadEnvFile 从 dotenv 文件加载环境变量，不覆盖已有的变量。
// 文件不存在时不报错
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Summary.Source {
	case SummaryDerived, SummaryAuthored:
	default:
		return fmt.Errorf("summary.source must be %q or %q, got %q", SummaryDerived, SummaryAuthored, c.Summary.Source)
	}
	if c.Summary.Source == SummaryAuthored && c.Summary.Authored.ScholarshipTotal == "" {
		return fmt.Errorf("summary.authored.scholarship_total is required when summary.source is %q", SummaryAuthored)
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %v, got %q", logging.ValidLevels(), c.Logging.Level)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Dashboard.Owner == "" {
		cfg.Dashboard.Owner = "Naghul Adhithya"
	}
	if cfg.Dashboard.Title == "" {
		cfg.Dashboard.Title = "University Admissions Dashboard"
	}
	if cfg.Dashboard.Subtitle == "" {
		cfg.Dashboard.Subtitle = "Fall 2026 Applications • Status Tracking • Documents & Scholarships"
	}
	if cfg.Summary.Source == "" {
		cfg.Summary.Source = SummaryDerived
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Export.File == "" {
		cfg.Export.File = "applications.csv"
	}
	if cfg.Export.StatsFile == "" {
		cfg.Export.StatsFile = "application_statistics.csv"
	}
	if cfg.Export.DigestFile == "" {
		cfg.Export.DigestFile = "dashboard.eml"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = logging.LevelInfo
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars 替换 ${VAR_NAME} 格式的环境变量，不存在时保持原样
func expandEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match
	})
}

// ParseDateLoose 解析 YYYY-MM-DD 或 RFC3339 格式的日期，
// 为空或无法解析时返回 def
func ParseDateLoose(s string, def time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return def
}
