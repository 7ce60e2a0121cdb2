package app

import (
	"net/url"
	"strings"

	"github.com/riskibarqy/team-manager/internal/config"
)

// databaseURL returns the connection string to open for cfg. Poolers that cannot
// keep prepared statements need lib/pq to skip binary results.
func databaseURL(cfg config.Config) string {
	raw := strings.TrimSpace(cfg.DBURL)
	if !cfg.DBDisablePreparedBinary {
		return raw
	}
	return withQueryDefault(raw, "disable_prepared_binary_result", "yes")
}

// withQueryDefault sets key on a URL-style connection string unless it is already
// present. Key/value DSNs are returned unchanged.
func withQueryDefault(raw, key, value string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Has(key) {
		return raw
	}
	query.Set(key, value)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// databaseName extracts the database name from either DSN style, for the
// db.name span attribute.
func databaseName(raw string) string {
	raw = strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		return strings.TrimPrefix(parsed.Path, "/")
	}

	for _, token := range strings.Fields(raw) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}

// redactedDatabaseURL hides the password so the URL can be logged.
func redactedDatabaseURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return "<dsn>"
	}
	return parsed.Redacted()
}
