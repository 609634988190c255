package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SoapConfig holds the eSM endpoint and session credentials.
type SoapConfig struct {
	EnvelopeNS  string `yaml:"envelope_ns" validate:"required"`
	ServiceNS   string `yaml:"service_ns" validate:"required"`
	Host        string `yaml:"host" validate:"required"`
	Port        int    `yaml:"port" validate:"required"`
	Path        string `yaml:"path" validate:"required"`
	Username    string `yaml:"username" validate:"required"`
	Password    string `yaml:"password"`
	ContentType string `yaml:"content_type"`
}

// EndpointURL assembles the service URL the way the upstream publishes it.
func (s SoapConfig) EndpointURL() string {
	return fmt.Sprintf("http://%s:%d/%s", s.Host, s.Port, s.Path)
}

// SchemaConfig carries the externally supplied field-name lists for the
// query and adjustment tasks. The lists are positional: the first entry is
// the task name, the rest are parameter/attribute names in the order the
// platform expects them. Lengths are validated at startup so a wrong schema
// fails fast instead of misaddressing fields mid-run.
type SchemaConfig struct {
	AccountQueryNames []string `yaml:"acct_query_names" validate:"len=9"`
	BundleQueryNames  []string `yaml:"bundle_query_names" validate:"len=9"`
	MainAdjustNames   []string `yaml:"main_adj_names" validate:"len=6"`
	BucketAdjustNames []string `yaml:"bucket_adj_names" validate:"len=7"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
	Dir      string `yaml:"dir"`
}

type ReportConfig struct {
	Dir string `yaml:"dir"`
}

// AppConfig is the main config struct that holds all configs.
type AppConfig struct {
	Soap    SoapConfig   `yaml:"soap"`
	Schema  SchemaConfig `yaml:"schema" validate:"required"`
	Logging LogConfig    `yaml:"logging"`
	Report  ReportConfig `yaml:"report"`
}

func assignDefaultConfigValues(cfg *AppConfig) {
	cfg.Soap.Username = GetEnvOrDefaultAsString("SOAP_USERNAME", cfg.Soap.Username)
	cfg.Soap.Password = GetEnvOrDefaultAsString("SOAP_PASSWORD", cfg.Soap.Password)
	cfg.Soap.Host = GetEnvOrDefaultAsString("SOAP_HOST", cfg.Soap.Host)
	cfg.Soap.Port = GetEnvOrDefaultAsInt("SOAP_PORT", cfg.Soap.Port)
	if cfg.Soap.ContentType == "" {
		cfg.Soap.ContentType = "text/xml; charset=utf-8"
	}
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOGGING_LEVEL", cfg.Logging.LogLevel)
	if cfg.Logging.LogLevel == "" {
		cfg.Logging.LogLevel = "info"
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = "IN_Operations_logs/Credit_Debit_logs"
	}
	if cfg.Report.Dir == "" {
		cfg.Report.Dir = cfg.Logging.Dir
	}
}

// LoadFromConfigFilePath loads and parses the config file into AppConfig and
// validates it. Schema lists with the wrong field count are rejected here.
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	assignDefaultConfigValues(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", configPath, err)
	}

	return &cfg, nil
}

// LoadFromConfig loads environment variables from a .env file when present
// and then loads the config file named by CONFIG_PATH.
func LoadFromConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")
	cfg, err := LoadFromConfigFilePath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}
	return cfg, nil
}

func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

// GetEnvOrDefaultAsString returns the value of the given env variable or the
// default value if not set.
func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
