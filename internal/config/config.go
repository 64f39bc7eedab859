package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/paddle-roster/internal/infrastructure/scheduler"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
)

// Config stores runtime configuration for the service and the sync CLI.
type Config struct {
	AppEnv                           string
	ServiceName                      string
	ServiceVersion                   string
	HTTPAddr                         string
	DBURL                            string
	CacheEnabled                     bool
	CacheTTL                         time.Duration
	CORSAllowedOrigins               []string
	ReadTimeout                      time.Duration
	WriteTimeout                     time.Duration
	PprofEnabled                     bool
	PprofAddr                        string
	TenniscoresBaseURL               string
	TenniscoresStandingsPath         string
	TenniscoresTimeout               time.Duration
	TenniscoresCircuitEnabled        bool
	TenniscoresCircuitFailureCount   int
	TenniscoresCircuitOpenTimeout    time.Duration
	TenniscoresCircuitHalfOpenMaxReq int
	ScrapeLeagues                    []string
	ScrapeTeamParam                  string
	ScrapeRequestInterval            time.Duration
	MatchScrapeCooldown              time.Duration
	SchedulerEnabled                 bool
	SchedulerLocation                *time.Location
	ScheduleRosterSync               scheduler.WeeklySpec
	ScheduleRankingsSync             scheduler.WeeklySpec
	InternalJobToken                 string
	UptraceEnabled                   bool
	UptraceDSN                       string
	PyroscopeEnabled                 bool
	PyroscopeServerAddress           string
	PyroscopeAppName                 string
	PyroscopeAuthToken               string
	PyroscopeBasicAuthUser           string
	PyroscopeBasicAuthPassword       string
	PyroscopeUploadRate              time.Duration
	LogLevel                         logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheEnabled && cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	// Job triggers run a whole sync inside the request.
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	tenniscoresTimeout, err := time.ParseDuration(getEnv("TENNISCORES_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TENNISCORES_TIMEOUT: %w", err)
	}
	if tenniscoresTimeout <= 0 {
		return Config{}, fmt.Errorf("TENNISCORES_TIMEOUT must be > 0")
	}
	tenniscoresCircuitEnabled, err := strconv.ParseBool(getEnv("TENNISCORES_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TENNISCORES_CIRCUIT_ENABLED: %w", err)
	}
	tenniscoresCircuitFailureCount, err := getEnvAsInt("TENNISCORES_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse TENNISCORES_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if tenniscoresCircuitFailureCount <= 0 {
		return Config{}, fmt.Errorf("TENNISCORES_CIRCUIT_FAILURE_COUNT must be > 0")
	}
	tenniscoresCircuitOpenTimeout, err := time.ParseDuration(getEnv("TENNISCORES_CIRCUIT_OPEN_TIMEOUT", "2m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TENNISCORES_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if tenniscoresCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("TENNISCORES_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	tenniscoresCircuitHalfOpenMaxReq, err := getEnvAsInt("TENNISCORES_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse TENNISCORES_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if tenniscoresCircuitHalfOpenMaxReq <= 0 {
		return Config{}, fmt.Errorf("TENNISCORES_CIRCUIT_HALF_OPEN_MAX_REQ must be > 0")
	}

	scrapeRequestInterval, err := time.ParseDuration(getEnv("SCRAPE_REQUEST_INTERVAL", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_REQUEST_INTERVAL: %w", err)
	}
	if scrapeRequestInterval < 0 {
		return Config{}, fmt.Errorf("SCRAPE_REQUEST_INTERVAL must be >= 0")
	}
	matchScrapeCooldown, err := time.ParseDuration(getEnv("MATCH_SCRAPE_COOLDOWN", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_SCRAPE_COOLDOWN: %w", err)
	}
	if matchScrapeCooldown <= 0 {
		return Config{}, fmt.Errorf("MATCH_SCRAPE_COOLDOWN must be > 0")
	}

	schedulerEnabled, err := strconv.ParseBool(getEnv("SCHEDULER_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULER_ENABLED: %w", err)
	}
	schedulerLocation, err := time.LoadLocation(getEnv("SCHEDULER_TIMEZONE", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULER_TIMEZONE: %w", err)
	}
	scheduleRosterSync, err := scheduler.ParseWeeklySpec(getEnv("SCHEDULE_ROSTER_SYNC", "monday 03:00"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULE_ROSTER_SYNC: %w", err)
	}
	scheduleRankingsSync, err := scheduler.ParseWeeklySpec(getEnv("SCHEDULE_RANKINGS_SYNC", "monday 05:00"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCHEDULE_RANKINGS_SYNC: %w", err)
	}

	cfg := Config{
		AppEnv:                           appEnv,
		ServiceName:                      getEnv("APP_SERVICE_NAME", "paddle-roster"),
		ServiceVersion:                   getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                         getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                            strings.TrimSpace(getEnv("DB_URL", "")),
		CacheEnabled:                     cacheEnabled,
		CacheTTL:                         cacheTTL,
		CORSAllowedOrigins:               splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                      readTimeout,
		WriteTimeout:                     writeTimeout,
		PprofEnabled:                     pprofEnabled,
		PprofAddr:                        pprofAddr,
		TenniscoresBaseURL:               strings.TrimSpace(getEnv("TENNISCORES_BASE_URL", "https://aptachicago.tenniscores.com")),
		TenniscoresStandingsPath:         strings.TrimSpace(getEnv("TENNISCORES_STANDINGS_PATH", "/")),
		TenniscoresTimeout:               tenniscoresTimeout,
		TenniscoresCircuitEnabled:        tenniscoresCircuitEnabled,
		TenniscoresCircuitFailureCount:   tenniscoresCircuitFailureCount,
		TenniscoresCircuitOpenTimeout:    tenniscoresCircuitOpenTimeout,
		TenniscoresCircuitHalfOpenMaxReq: tenniscoresCircuitHalfOpenMaxReq,
		ScrapeLeagues:                    splitCSV(getEnv("SCRAPE_LEAGUES", "")),
		ScrapeTeamParam:                  strings.TrimSpace(getEnv("SCRAPE_TEAM_PARAM", "team")),
		ScrapeRequestInterval:            scrapeRequestInterval,
		MatchScrapeCooldown:              matchScrapeCooldown,
		SchedulerEnabled:                 schedulerEnabled,
		SchedulerLocation:                schedulerLocation,
		ScheduleRosterSync:               scheduleRosterSync,
		ScheduleRankingsSync:             scheduleRankingsSync,
		InternalJobToken:                 strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		UptraceEnabled:                   uptraceEnabled,
		UptraceDSN:                       uptraceDSN,
		PyroscopeEnabled:                 pyroscopeEnabled,
		PyroscopeServerAddress:           pyroscopeServerAddress,
		PyroscopeAppName:                 getEnv("PYROSCOPE_APP_NAME", "paddle-roster"),
		PyroscopeAuthToken:               getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeBasicAuthUser:           getEnv("PYROSCOPE_BASIC_AUTH_USER", ""),
		PyroscopeBasicAuthPassword:       getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""),
		PyroscopeUploadRate:              pyroscopeUploadRate,
		LogLevel:                         logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
