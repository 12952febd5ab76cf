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

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Admin allow-list
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Dashboard configuration for snapshot refresh and the background task queue
	Dashboard *DashboardConfig `json:"dashboard" yaml:"dashboard"`

	// Dispatch configuration for notification fan-out and channel revocation
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Display configuration for delivery timelines
	Display *DisplayConfig `json:"display" yaml:"display"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for delivery tracking labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for notification event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the connection for the dashboard snapshot store
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
	// SnapshotTTL bounds how long an untouched snapshot is kept; zero keeps it forever.
	SnapshotTTL time.Duration `json:"snapshotTTL" yaml:"snapshotTTL"`
}

// AdminConfig lists operators allowed to act on any delivery or dashboard
type AdminConfig struct {
	Emails []string `json:"emails" yaml:"emails"`
}

// DashboardConfig defines snapshot sizes and the background refresh queue
type DashboardConfig struct {
	PendingLimit int           `json:"pendingLimit" yaml:"pendingLimit"`
	FarmerLimit  int           `json:"farmerLimit" yaml:"farmerLimit"`
	Workers      int           `json:"workers" yaml:"workers"`
	QueueSize    int           `json:"queueSize" yaml:"queueSize"`
	TaskTimeout  time.Duration `json:"taskTimeout" yaml:"taskTimeout"`
}

// DispatchConfig defines notification fan-out and the channel revocation policy
type DispatchConfig struct {
	// Number of tokens per FCM multicast request (max 500)
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Consecutive transient failures after which a channel is revoked; 0 disables
	MaxConsecutiveFailures int `json:"maxConsecutiveFailures" yaml:"maxConsecutiveFailures"`

	// Channels not re-registered within this window are pruned; 0 disables the sweep
	StaleAfter time.Duration `json:"staleAfter" yaml:"staleAfter"`

	// Interval of the stale channel sweep
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`

	// Base URL used to build links in notifications and tracking QR codes
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Listen port of the dispatch worker; it must match the port of pubsub.localEndpoint
	WorkerPort int `json:"workerPort" yaml:"workerPort"`
}

// DisplayConfig defines how delivery timestamps are rendered
type DisplayConfig struct {
	Timezone   string `json:"timezone" yaml:"timezone"`
	TimeLayout string `json:"timeLayout" yaml:"timeLayout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "memory"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the Prometheus namespace
type MetricsConfig struct {
	Namespace string `json:"namespace" yaml:"namespace"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DASHBOARD_QUEUESIZE -> dashboard.queueSize
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills optional sections so downstream constructors never see nil.
func (c *Config) applyDefaults() {
	if c.Redis == nil {
		c.Redis = &RedisConfig{Addr: "localhost:6379"}
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "farmlink:"
	}

	if c.Admin == nil {
		c.Admin = &AdminConfig{}
	}

	if c.Dashboard == nil {
		c.Dashboard = &DashboardConfig{}
	}
	if c.Dashboard.PendingLimit <= 0 {
		c.Dashboard.PendingLimit = 5
	}
	if c.Dashboard.FarmerLimit <= 0 {
		c.Dashboard.FarmerLimit = 20
	}
	if c.Dashboard.Workers <= 0 {
		c.Dashboard.Workers = 4
	}
	if c.Dashboard.QueueSize <= 0 {
		c.Dashboard.QueueSize = 256
	}
	if c.Dashboard.TaskTimeout <= 0 {
		c.Dashboard.TaskTimeout = 10 * time.Second
	}

	if c.Dispatch == nil {
		c.Dispatch = &DispatchConfig{MaxConsecutiveFailures: 5}
	}
	if c.Dispatch.BatchSize <= 0 || c.Dispatch.BatchSize > 500 {
		c.Dispatch.BatchSize = 500
	}
	if c.Dispatch.WorkerPort <= 0 {
		c.Dispatch.WorkerPort = 8081
	}
	if c.Dispatch.SweepInterval <= 0 {
		c.Dispatch.SweepInterval = 24 * time.Hour
	}

	if c.Display == nil {
		c.Display = &DisplayConfig{}
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = "UTC"
	}
	if c.Display.TimeLayout == "" {
		c.Display.TimeLayout = "2006-01-02 15:04"
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "farmlink"
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
