package sink

import (
	"fmt"
	"strings"
	"time"

	"perfgen/internal/config"
	"perfgen/pkg/errors"
)

// Dialect captures the identifier quoting and column types of a warehouse
type Dialect interface {
	Name() string
	Quote(ident string) string
	ColumnType(sample interface{}) string
}

// DialectFor returns the dialect for a driver name
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverMySQL:
		return mysqlDialect{}, nil
	case config.DriverSnowflake:
		return snowflakeDialect{}, nil
	default:
		return nil, errors.ConfigError(fmt.Sprintf("unsupported warehouse driver %q", driver), "warehouse.driver")
	}
}

type mysqlDialect struct{}

func (mysqlDialect) Name() string { return config.DriverMySQL }

func (mysqlDialect) Quote(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

func (mysqlDialect) ColumnType(sample interface{}) string {
	switch sample.(type) {
	case int, int64:
		return "BIGINT"
	case float64:
		return "DOUBLE"
	case time.Time:
		return "DATE"
	default:
		return "VARCHAR(255)"
	}
}

type snowflakeDialect struct{}

func (snowflakeDialect) Name() string { return config.DriverSnowflake }

func (snowflakeDialect) Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (snowflakeDialect) ColumnType(sample interface{}) string {
	switch sample.(type) {
	case int, int64:
		return "NUMBER(38,0)"
	case float64:
		return "FLOAT"
	case time.Time:
		return "DATE"
	default:
		return "VARCHAR"
	}
}
