package sqlclause

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Dialect carries the engine specific spelling of identifiers and literals.
type Dialect interface {
	// Name matches the gorm dialector name ("mysql", "postgres").
	Name() string
	// Quote quotes an identifier such as a table alias.
	Quote(ident string) string
	// EscapeString escapes s for use inside a single quoted literal.
	EscapeString(s string) string
	// DateLiteral renders t in the canonical storage form, unquoted.
	DateLiteral(t time.Time) string
}

var (
	MySQL    Dialect = mysqlDialect{}
	Postgres Dialect = postgresDialect{}
)

// DialectByName returns the dialect registered under name.
func DialectByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "mysql", "mariadb":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	}
	return nil, errors.Errorf("unsupported dialect %q", name)
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) Quote(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

var mysqlEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"'", "\\'",
	`"`, `\"`,
	"\x00", "\\0",
	"\n", "\\n",
	"\r", "\\r",
	"\x1a", "\\Z",
)

// EscapeString mirrors mysql_real_escape_string.
func (mysqlDialect) EscapeString(s string) string {
	return mysqlEscaper.Replace(s)
}

func (mysqlDialect) DateLiteral(t time.Time) string {
	return t.Format("20060102150405")
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

var postgresEscaper = strings.NewReplacer(
	"'", "''",
	"\x00", "",
)

// EscapeString assumes standard_conforming_strings, so backslashes stay literal.
func (postgresDialect) EscapeString(s string) string {
	return postgresEscaper.Replace(s)
}

func (postgresDialect) DateLiteral(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
