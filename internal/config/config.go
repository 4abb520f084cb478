package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	AppName    = "WiselyDiary"
	AppVersion = "1.0.0"
)

// EnvPrefix is prepended to every environment variable, e.g. WISELY_LLM_API_KEY.
const EnvPrefix = "WISELY"

// Config keys. Nested keys map to env vars by replacing "." and "-" with "_".
const (
	KeyAddr              = "addr"
	KeyDataDir           = "data-dir"
	KeyDBPath            = "db-path"
	KeyLogLevel          = "log-level"
	KeyLogFormat         = "log-format"
	KeyNodeID            = "node-id"
	KeyTimezone          = "timezone"
	KeyMaxUploadSize     = "max-upload-size"
	KeyLLMProvider       = "llm.provider"
	KeyLLMAPIKey         = "llm.api-key"
	KeyLLMBaseURL        = "llm.base-url"
	KeyLLMModel          = "llm.model"
	KeyLLMTemperature    = "llm.temperature"
	KeyLLMFreeformModel  = "llm.freeform-model"
	KeyLLMFreeformTemp   = "llm.freeform-temperature"
	KeyLLMEmbeddingModel = "llm.embedding-model"
	KeyLLMProxyURL       = "llm.proxy-url"
	KeyLLMTimeout        = "llm.timeout"
	KeyLLMRateLimit      = "llm.rate-limit"
)

type Config struct {
	Addr          string
	DataDir       string
	DBPath        string
	LogLevel      string
	LogFormat     string
	NodeID        int64
	Timezone      string
	MaxUploadSize string
	LLM           LLMConfig
}

// LLMConfig holds settings for the chat-completion gateway and the embedder.
type LLMConfig struct {
	Provider            string
	APIKey              string
	BaseURL             string
	Model               string
	Temperature         float64
	FreeformModel       string
	FreeformTemperature float64
	EmbeddingModel      string
	ProxyURL            string
	Timeout             time.Duration
	RateLimit           int
}

// NewViper returns a viper instance with defaults and environment binding applied.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// The conventional variable name works too.
	_ = v.BindEnv(KeyLLMAPIKey, EnvPrefix+"_LLM_API_KEY", "OPENAI_API_KEY")
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyDataDir, "./data")
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyNodeID, 1)
	v.SetDefault(KeyTimezone, "Asia/Seoul")
	v.SetDefault(KeyMaxUploadSize, "10M")
	v.SetDefault(KeyLLMProvider, "openai")
	v.SetDefault(KeyLLMModel, "gpt-4o-mini")
	v.SetDefault(KeyLLMTemperature, 0.7)
	v.SetDefault(KeyLLMFreeformModel, "gpt-3.5-turbo")
	v.SetDefault(KeyLLMFreeformTemp, 0.7)
	v.SetDefault(KeyLLMEmbeddingModel, "text-embedding-3-small")
	v.SetDefault(KeyLLMTimeout, 60*time.Second)
	v.SetDefault(KeyLLMRateLimit, 10)
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	dataDir := v.GetString(KeyDataDir)
	dbPath := v.GetString(KeyDBPath)
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "wiselydiary.db")
	}

	cfg := Config{
		Addr:          v.GetString(KeyAddr),
		DataDir:       filepath.Clean(dataDir),
		DBPath:        filepath.Clean(dbPath),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     strings.ToLower(v.GetString(KeyLogFormat)),
		NodeID:        v.GetInt64(KeyNodeID),
		Timezone:      v.GetString(KeyTimezone),
		MaxUploadSize: v.GetString(KeyMaxUploadSize),
		LLM: LLMConfig{
			Provider:            strings.ToLower(v.GetString(KeyLLMProvider)),
			APIKey:              v.GetString(KeyLLMAPIKey),
			BaseURL:             v.GetString(KeyLLMBaseURL),
			Model:               v.GetString(KeyLLMModel),
			Temperature:         v.GetFloat64(KeyLLMTemperature),
			FreeformModel:       v.GetString(KeyLLMFreeformModel),
			FreeformTemperature: v.GetFloat64(KeyLLMFreeformTemp),
			EmbeddingModel:      v.GetString(KeyLLMEmbeddingModel),
			ProxyURL:            v.GetString(KeyLLMProxyURL),
			Timeout:             v.GetDuration(KeyLLMTimeout),
			RateLimit:           v.GetInt(KeyLLMRateLimit),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.DBPath, validation.Required),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.NodeID, validation.Min(int64(0)), validation.Max(int64(1023))),
		validation.Field(&c.Timezone, validation.By(validLocation)),
	); err != nil {
		return err
	}
	return c.LLM.Validate()
}

func (c *LLMConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Provider, validation.Required, validation.In("openai", "anthropic", "compatible")),
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.FreeformModel, validation.Required),
		validation.Field(&c.BaseURL, validation.When(c.Provider == "compatible", validation.Required)),
		validation.Field(&c.Temperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&c.FreeformTemperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// Location resolves Timezone, falling back to the local zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func validLocation(value interface{}) error {
	name, _ := value.(string)
	if name == "" {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown timezone %q", name)
	}
	return nil
}
