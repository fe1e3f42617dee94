package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config defines the structure of the configuration file.
type Config struct {
	GitCommit    string        `yaml:"git_commit" envconfig:"BSC_GIT_COMMIT"`
	GitTag       string        `yaml:"git_tag" envconfig:"BSC_GIT_TAG"`
	BuildTime    string        `yaml:"build_time" envconfig:"BSC_BUILD_TIME"`
	IsProduction bool          `yaml:"is_production" envconfig:"BSC_IS_PRODUCTION"`
	LogLevel     zapcore.Level `yaml:"log_level" envconfig:"BSC_LOG_LEVEL"`
	LogFile      string        `yaml:"log_file" envconfig:"BSC_LOG_FILE"`
	Backend      BackendConfig `yaml:"backend"`
	Vault        VaultConfig   `yaml:"vault"`
	Redis        RedisConfig   `yaml:"redis"`
}

// BackendConfig holds the bookshop REST backend settings. The base url
// covers all endpoints (auth, cart, orders, books). Each call makes a
// single attempt so the timeout is the only transport guard.
type BackendConfig struct {
	BaseURL        string        `yaml:"base_url" envconfig:"BSC_BACKEND_BASE_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"BSC_BACKEND_REQUEST_TIMEOUT"`
}

// VaultConfig selects and configures the durable storage used to
// persist the session between runs. Kind is either `bolt` or `redis`.
type VaultConfig struct {
	Kind       string        `yaml:"kind" envconfig:"BSC_VAULT_KIND"`
	FilePath   string        `yaml:"filepath" envconfig:"BSC_VAULT_FILE_PATH"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"BSC_VAULT_TIMEOUT"`
	BucketName string        `yaml:"bucket_name" envconfig:"BSC_VAULT_BUCKET_NAME"`
}

type RedisConfig struct {
	Host          string        `yaml:"host" envconfig:"BSC_REDIS_HOST"`
	Port          string        `yaml:"port" envconfig:"BSC_REDIS_PORT"`
	DialTimeout   time.Duration `yaml:"dial_timeout" envconfig:"BSC_REDIS_DIAL_TIMEOUT"`
	ReadTimeout   time.Duration `yaml:"read_timeout" envconfig:"BSC_REDIS_READ_TIMEOUT"`
	WriteTimeout  time.Duration `yaml:"write_timeout" envconfig:"BSC_REDIS_WRITE_TIMEOUT"`
	PoolSize      int           `yaml:"pool_size" envconfig:"BSC_REDIS_POOL_SIZE"`
	PoolTimeout   time.Duration `yaml:"pool_timeout" envconfig:"BSC_REDIS_POOL_TIMEOUT"`
	Username      string        `yaml:"username" envconfig:"BSC_REDIS_USERNAME"`
	Password      string        `yaml:"password" envconfig:"BSC_REDIS_PASSWORD"`
	DatabaseIndex int           `yaml:"db_index" envconfig:"BSC_REDIS_DATABASE_INDEX"`
}

const (
	VaultKindBolt  = "bolt"
	VaultKindRedis = "redis"
)

// LoadConfigFile provides an instance of config structure for the all application.
func LoadConfigFile(configFile string) (*Config, error) {
	file, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cfg := &Config{}
	yd := yaml.NewDecoder(file)
	err = yd.Decode(cfg)

	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigEnvs reads the environments variables and provides an instance of the App config.
func LoadConfigEnvs(prefix string, config *Config) error {
	return envconfig.Process(prefix, config)
}

// InitConfig setup defaults values for non provided parameters
// and configures build tags values to be used if provided.
func InitConfig(config *Config, gitCommit, gitTag, buildTime string) error {
	if len(gitCommit) != 0 {
		config.GitCommit = gitCommit
	}

	if len(gitTag) != 0 {
		config.GitTag = gitTag
	}

	if len(buildTime) != 0 {
		config.BuildTime = buildTime
	}

	if len(strings.TrimSpace(config.Backend.BaseURL)) == 0 {
		return errors.New("make sure to set the backend base url in configuration file")
	}
	config.Backend.BaseURL = strings.TrimRight(config.Backend.BaseURL, "/")

	if config.Backend.RequestTimeout <= 0 {
		config.Backend.RequestTimeout = 15 * time.Second
	}

	switch config.Vault.Kind {
	case VaultKindBolt:
		if len(config.Vault.FilePath) == 0 || len(config.Vault.BucketName) == 0 {
			return errors.New("make sure to set valid vault filepath and bucket name in configuration file")
		}
	case VaultKindRedis:
		if len(config.Redis.Host) == 0 || len(config.Redis.Port) == 0 {
			return errors.New("make sure to set valid redis address and port in configuration file")
		}
	default:
		return fmt.Errorf("unknown vault kind %q: must be %q or %q", config.Vault.Kind, VaultKindBolt, VaultKindRedis)
	}

	return nil
}

// LoadAndInitConfigs loads in order the configs from various predefined sources
// then build the App configuration data.
func LoadAndInitConfigs(gitCommit, gitTag, buildTime string) (*Config, error) {
	// Setup the yaml configuration from file.
	config, err := LoadConfigFile("./config.yml")
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from file: %s", err)
	}

	// Set the environment configuration.
	err = godotenv.Load("./config.env")
	if err != nil {
		return config, fmt.Errorf("failed to set environment configurations: %s", err)
	}

	// Use environment variables with prefix `BSC`.
	err = LoadConfigEnvs("BSC", config)
	if err != nil {
		return config, fmt.Errorf("failed to load configurations from environment: %s", err)
	}

	err = InitConfig(config, gitCommit, gitTag, buildTime)
	if err != nil {
		return config, fmt.Errorf("failed to initialize configurations: %s", err)
	}
	return config, nil
}
