package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultFollowUpSchedule    = "@every 5m"
	defaultFollowUpScanTimeout = 4 * time.Minute
	defaultScanLockTTL         = 10 * time.Minute

	defaultSMTPConnectTimeout  = 10 * time.Second
	defaultSMTPGreetingTimeout = 10 * time.Second
	defaultSMTPSocketTimeout   = 20 * time.Second

	defaultRouterConcurrency   = 32
	defaultDispatcherWorkers   = 4
	defaultDispatcherQueueSize = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Email configuration for the email channel
	Email *EmailConfig `json:"email" yaml:"email"`

	// Notification configuration for the router and background dispatcher
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// FollowUp configuration for the help-request follow-up scheduler
	FollowUp *FollowUpConfig `json:"followUp" yaml:"followUp"`

	// Redis configuration for the distributed scan lock
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for delivery event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Per-message send timeout
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
}

// EmailConfig defines the email transport
type EmailConfig struct {
	// Provider type: "smtp" or "ses"
	Provider string `json:"provider" yaml:"provider"`

	FromAddress string `json:"fromAddress" yaml:"fromAddress"`
	FromName    string `json:"fromName" yaml:"fromName"`

	SMTP SMTPConfig `json:"smtp" yaml:"smtp"`
	SES  SESConfig  `json:"ses" yaml:"ses"`
}

// SMTPConfig defines SMTP relay parameters and bounded timeouts
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	UseTLS   bool   `json:"useTls" yaml:"useTls"`

	ConnectTimeout  time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	GreetingTimeout time.Duration `json:"greetingTimeout" yaml:"greetingTimeout"`
	SocketTimeout   time.Duration `json:"socketTimeout" yaml:"socketTimeout"`
}

// SESConfig defines AWS SES parameters
type SESConfig struct {
	Region  string        `json:"region" yaml:"region"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// NotificationConfig defines router fan-out and background dispatch limits
type NotificationConfig struct {
	// Maximum number of recipients delivered concurrently by one routing call
	MaxConcurrency int `json:"maxConcurrency" yaml:"maxConcurrency"`

	// Background dispatcher worker count and queue capacity
	DispatcherWorkers   int `json:"dispatcherWorkers" yaml:"dispatcherWorkers"`
	DispatcherQueueSize int `json:"dispatcherQueueSize" yaml:"dispatcherQueueSize"`

	// Base URL prepended to relative links in push data and email buttons
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// FollowUpConfig defines the follow-up scheduler
type FollowUpConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// cron expression or descriptor, e.g. "@every 5m"
	Schedule string `json:"schedule" yaml:"schedule"`

	// Upper bound for one scan cycle
	ScanTimeout time.Duration `json:"scanTimeout" yaml:"scanTimeout"`
}

// RedisConfig defines the Redis connection used for the scan lock
type RedisConfig struct {
	Address  string        `json:"address" yaml:"address"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	LockKey  string        `json:"lockKey" yaml:"lockKey"`
	LockTTL  time.Duration `json:"lockTtl" yaml:"lockTtl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so that consumers never see nil pointers
// or zero timeouts.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.MaxConcurrency <= 0 {
		cfg.Notification.MaxConcurrency = defaultRouterConcurrency
	}
	if cfg.Notification.DispatcherWorkers <= 0 {
		cfg.Notification.DispatcherWorkers = defaultDispatcherWorkers
	}
	if cfg.Notification.DispatcherQueueSize <= 0 {
		cfg.Notification.DispatcherQueueSize = defaultDispatcherQueueSize
	}

	if cfg.FollowUp == nil {
		cfg.FollowUp = &FollowUpConfig{Enabled: true}
	}
	if strings.TrimSpace(cfg.FollowUp.Schedule) == "" {
		cfg.FollowUp.Schedule = defaultFollowUpSchedule
	}
	if cfg.FollowUp.ScanTimeout <= 0 {
		cfg.FollowUp.ScanTimeout = defaultFollowUpScanTimeout
	}

	if cfg.Email != nil {
		smtpCfg := &cfg.Email.SMTP
		if smtpCfg.ConnectTimeout <= 0 {
			smtpCfg.ConnectTimeout = defaultSMTPConnectTimeout
		}
		if smtpCfg.GreetingTimeout <= 0 {
			smtpCfg.GreetingTimeout = defaultSMTPGreetingTimeout
		}
		if smtpCfg.SocketTimeout <= 0 {
			smtpCfg.SocketTimeout = defaultSMTPSocketTimeout
		}
		if cfg.Email.SES.Timeout <= 0 {
			cfg.Email.SES.Timeout = defaultSMTPSocketTimeout
		}
	}

	if cfg.Redis != nil {
		if strings.TrimSpace(cfg.Redis.LockKey) == "" {
			cfg.Redis.LockKey = "hyperlocal:followup:scan"
		}
		if cfg.Redis.LockTTL <= 0 {
			cfg.Redis.LockTTL = defaultScanLockTTL
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
