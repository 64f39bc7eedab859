package app

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/riskibarqy/paddle-roster/internal/config"
)

// DatabaseURL returns the connection string used by the app and the migration tool.
// Connections are tagged with the service name so they are identifiable in pg_stat_activity.
func DatabaseURL(cfg config.Config) (string, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		return "", fmt.Errorf("DB_URL is required")
	}
	return withApplicationName(strings.TrimSpace(cfg.DBURL), cfg.ServiceName), nil
}

// withApplicationName sets application_name on a URL or key=value DSN unless
// the caller already chose one.
func withApplicationName(dsn, appName string) string {
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return dsn
	}

	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		query := parsed.Query()
		if query.Get("application_name") != "" {
			return dsn
		}
		query.Set("application_name", appName)
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	for _, token := range strings.Fields(dsn) {
		if strings.HasPrefix(token, "application_name=") {
			return dsn
		}
	}
	return dsn + " application_name=" + strings.ReplaceAll(appName, " ", "_")
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			if name = strings.Trim(name, `"'`); name != "" {
				return name
			}
		}
	}
	return ""
}
