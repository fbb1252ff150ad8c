package testdb

import (
	"os"

	"github.com/phrazzld/deckstudy/internal/redact"
)

// DatabaseURLVars are checked in order for the test database URL.
var DatabaseURLVars = []string{"DATABASE_URL", "DECKSTUDY_TEST_DB_URL", "DECKSTUDY_DATABASE_URL"}

// DatabaseURL returns the first non-empty database URL from DatabaseURLVars.
func DatabaseURL() string {
	for _, name := range DatabaseURLVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkip reports whether no test database is configured.
func ShouldSkip() bool {
	return DatabaseURL() == ""
}

// IsCI reports whether the tests run under a CI system.
func IsCI() bool {
	for _, name := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// MaskedURL returns the configured URL with credentials removed, for test logs.
func MaskedURL() string {
	return redact.DatabaseURL(DatabaseURL())
}
