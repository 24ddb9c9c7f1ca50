package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Log    LogConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	llm, err := loadLLMConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, LLM: llm, Log: logCfg}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

type serverEnv struct {
	Port string `envconfig:"PORT" default:"5000"`
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	var env serverEnv
	if err := envconfig.Process("", &env); err != nil {
		return ServerConfig{}, fmt.Errorf("load server config: %w", err)
	}

	port := strings.TrimSpace(env.Port)
	if port == "" {
		port = "5000"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":5000" 或 "127.0.0.1:5000"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

const (
	defaultOllamaHost = "http://localhost:11434"
	defaultModel      = "llama3"
)

// LLMConfig 描述本地 Ollama 聊天服务的配置。
type LLMConfig struct {
	Host    string        `envconfig:"OLLAMA_HOST" default:"http://localhost:11434"`
	Model   string        `envconfig:"MODEL_NAME" default:"llama3"`
	Timeout time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
}

func loadLLMConfig() (LLMConfig, error) {
	var cfg LLMConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return LLMConfig{}, fmt.Errorf("load llm config: %w", err)
	}

	cfg.Host = strings.TrimRight(strings.TrimSpace(cfg.Host), "/")
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Host == "" {
		cfg.Host = defaultOllamaHost
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		return LLMConfig{}, fmt.Errorf("invalid LLM_TIMEOUT value: %s", cfg.Timeout)
	}
	return cfg, nil
}

// LogConfig 描述日志输出配置。
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

func loadLogConfig() (LogConfig, error) {
	var cfg LogConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return LogConfig{}, fmt.Errorf("load log config: %w", err)
	}

	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	return cfg, nil
}
