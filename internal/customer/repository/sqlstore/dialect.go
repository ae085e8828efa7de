package sqlstore

import (
	"fmt"
	"regexp"
	"strings"

	"cseboard/pkg/database"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// dialect covers the syntax that differs between the supported engines.
type dialect struct {
	name        string
	placeholder func(n int) string
	quote       func(ident string) string
}

var (
	postgresDialect = dialect{
		name:        database.DriverPostgres,
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
		quote:       func(ident string) string { return `"` + ident + `"` },
	}
	sqliteDialect = dialect{
		name:        database.DriverSQLite,
		placeholder: func(int) string { return "?" },
		quote:       func(ident string) string { return `"` + ident + `"` },
	}
	sqlServerDialect = dialect{
		name:        database.DriverSQLServer,
		placeholder: func(n int) string { return fmt.Sprintf("@p%d", n) },
		quote:       func(ident string) string { return "[" + ident + "]" },
	}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case database.DriverPostgres:
		return postgresDialect, nil
	case database.DriverSQLite:
		return sqliteDialect, nil
	case database.DriverSQLServer:
		return sqlServerDialect, nil
	default:
		return dialect{}, fmt.Errorf("%w: %q", database.ErrUnsupportedDriver, driver)
	}
}

// quoteTable quotes each dot-separated part of a possibly qualified table
// name. Table names are interpolated into SQL, so every part must be a plain
// identifier.
func (d dialect) quoteTable(table string) (string, error) {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		if !identPattern.MatchString(p) {
			return "", fmt.Errorf("invalid table name %q", table)
		}
		parts[i] = d.quote(p)
	}
	return strings.Join(parts, "."), nil
}
