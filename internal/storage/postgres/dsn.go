package postgres

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ecap-org/ecap-directory/config"
)

func DSN(cfg *config.DatabaseConfig) string {
	return strings.TrimSpace(cfg.DSN)
}

var kvPassword = regexp.MustCompile(`(password=)(\S+)`)

// Redact masks the password of a URL or key/value DSN for log output.
func Redact(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
		return u.String()
	}
	return kvPassword.ReplaceAllString(dsn, "${1}xxxxx")
}
