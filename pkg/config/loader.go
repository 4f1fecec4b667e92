package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// MajordomoYAMLConfig represents the complete majordomo.yaml file structure
type MajordomoYAMLConfig struct {
	System     *SystemYAMLConfig          `yaml:"system"`
	MCPServers map[string]MCPServerConfig `yaml:"mcp_servers"`
	Worker     *WorkerConfig              `yaml:"worker"`
	Chat       *ChatConfig                `yaml:"chat"`
	Agent      *AgentConfig               `yaml:"agent"`
}

// SystemYAMLConfig groups system-wide daemon settings.
type SystemYAMLConfig struct {
	Port             int              `yaml:"port"`
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
	Retention        *RetentionConfig `yaml:"retention"`
}

// SkillsYAMLConfig represents the complete skills.yaml file structure
type SkillsYAMLConfig struct {
	Skills map[string]SkillConfig `yaml:"skills"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir (both optional; defaults apply)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values and env overrides
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"skills", stats.Skills,
		"mcp_servers", stats.MCPServers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load majordomo.yaml (system, mcp_servers, worker, chat, agent)
	mainConfig, err := loader.loadMajordomoYAML()
	if err != nil {
		return nil, NewLoadError("majordomo.yaml", err)
	}

	// 2. Load skills.yaml
	skills, err := loader.loadSkillsYAML()
	if err != nil {
		return nil, NewLoadError("skills.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	mergedSkills := mergeSkills(builtin.Skills, skills)
	mergedServers := mergeMCPServers(builtin.MCPServers, mainConfig.MCPServers)

	// 5. Build registries
	skillRegistry := NewSkillRegistry(mergedSkills)
	mcpServerRegistry := NewMCPServerRegistry(mergedServers)

	// 6. Resolve sections (merge user YAML with built-in defaults;
	// non-zero user values override)
	workerConfig := DefaultWorkerConfig()
	if mainConfig.Worker != nil {
		if err := mergo.Merge(workerConfig, mainConfig.Worker, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge worker config: %w", err)
		}
	}

	chatConfig := DefaultChatConfig()
	if mainConfig.Chat != nil {
		if err := mergo.Merge(chatConfig, mainConfig.Chat, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge chat config: %w", err)
		}
	}

	agentConfig := DefaultAgentConfig()
	if mainConfig.Agent != nil {
		if err := mergo.Merge(agentConfig, mainConfig.Agent, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge agent config: %w", err)
		}
	}
	if bin := os.Getenv("CLAUDE_BIN"); bin != "" {
		agentConfig.Bin = bin
	}

	systemConfig := resolveSystemConfig(mainConfig.System)
	retentionConfig := resolveRetentionConfig(mainConfig.System)

	return &Config{
		configDir:         configDir,
		System:            systemConfig,
		Retention:         retentionConfig,
		Worker:            workerConfig,
		Chat:              chatConfig,
		Agent:             agentConfig,
		SkillRegistry:     skillRegistry,
		MCPServerRegistry: mcpServerRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadMajordomoYAML reads majordomo.yaml. A missing file is not an
// error; the daemon can run entirely on defaults plus environment.
func (l *configLoader) loadMajordomoYAML() (*MajordomoYAMLConfig, error) {
	var config MajordomoYAMLConfig

	// Initialize maps to avoid nil maps
	config.MCPServers = make(map[string]MCPServerConfig)

	if err := l.loadYAML("majordomo.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No majordomo.yaml found, using defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// loadSkillsYAML reads skills.yaml. A missing file means no user skills.
func (l *configLoader) loadSkillsYAML() (map[string]SkillConfig, error) {
	var config SkillsYAMLConfig

	// Initialize map to avoid nil map
	config.Skills = make(map[string]SkillConfig)

	if err := l.loadYAML("skills.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No skills.yaml found, no user skills registered")
			return config.Skills, nil
		}
		return nil, err
	}

	return config.Skills, nil
}

// resolveSystemConfig resolves system configuration from system YAML,
// applying defaults and the MAJORDOMO_PORT override.
func resolveSystemConfig(sys *SystemYAMLConfig) *SystemConfig {
	cfg := DefaultSystemConfig()

	if sys != nil {
		if sys.Port > 0 {
			cfg.Port = sys.Port
		}
		if len(sys.AllowedWSOrigins) > 0 {
			cfg.AllowedWSOrigins = sys.AllowedWSOrigins
		}
	}

	if raw := os.Getenv("MAJORDOMO_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil && port > 0 {
			cfg.Port = port
		} else {
			slog.Warn("Invalid MAJORDOMO_PORT, keeping configured port",
				"value", raw,
				"port", cfg.Port)
		}
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.ConversationIdleDays > 0 {
		cfg.ConversationIdleDays = r.ConversationIdleDays
	}
	if r.NotificationTTL > 0 {
		cfg.NotificationTTL = r.NotificationTTL
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
