package sink

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/snowflakedb/gosnowflake"

	"perfgen/internal/config"
	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

const defaultMySQLPort = 3306

// DSN builds the driver name and data source name for a warehouse
func DSN(w models.Warehouse) (string, string, error) {
	switch w.Driver {
	case config.DriverMySQL:
		port := w.Port
		if port == 0 {
			port = defaultMySQLPort
		}
		cfg := mysql.NewConfig()
		cfg.User = w.Username
		cfg.Passwd = w.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(w.Host, strconv.Itoa(port))
		cfg.DBName = w.Database
		cfg.ParseTime = true
		cfg.Params = map[string]string{"charset": "utf8mb4"}
		return config.DriverMySQL, cfg.FormatDSN(), nil

	case config.DriverSnowflake:
		dsn, err := gosnowflake.DSN(&gosnowflake.Config{
			Account:   w.Account,
			User:      w.Username,
			Password:  w.Password,
			Database:  w.Database,
			Schema:    w.Schema,
			Warehouse: w.Warehouse,
			Role:      w.Role,
		})
		if err != nil {
			return "", "", errors.Wrap(err, errors.ErrCodeConfigInvalid, "invalid snowflake settings").
				WithContext("account", w.Account)
		}
		return config.DriverSnowflake, dsn, nil

	default:
		return "", "", errors.ConfigError(fmt.Sprintf("unsupported warehouse driver %q", w.Driver), "warehouse.driver")
	}
}

// Open connects to the warehouse and verifies the connection
func Open(ctx context.Context, w models.Warehouse) (*sql.DB, error) {
	driver, dsn, err := DSN(w)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConnectionFailed, "failed to open warehouse connection").
			WithContext("driver", driver)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(10 * time.Minute)

	retry := errors.DefaultRetryConfig()
	retry.OnRetry = func(attempt int, delay time.Duration, err error) {
		slog.Warn("warehouse not reachable, retrying", "driver", driver, "attempt", attempt, "delay", delay, "error", err)
	}
	err = errors.Retry(ctx, retry, func(ctx context.Context) error {
		return pingError(db.PingContext(ctx), driver, w)
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// pingError classifies a failed ping. Authentication failures are final;
// anything else is reported as a connection failure and may be retried.
func pingError(err error, driver string, w models.Warehouse) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "authentication") || strings.Contains(msg, "access denied") {
		return errors.Wrap(err, errors.ErrCodeAuthenticationFailed, "warehouse authentication failed").
			WithContext("user", w.Username).
			WithSuggestions("Verify the warehouse username and password",
				"Store the password with 'perfgen init' or set PERFGEN_WAREHOUSE_PASSWORD")
	}
	return errors.Wrap(err, errors.ErrCodeConnectionFailed, "failed to connect to warehouse").
		WithContext("driver", driver).
		WithSuggestions("Check the warehouse host or account and network connectivity")
}

// SQLSink loads each table into the warehouse: the table is dropped and
// recreated, then rows are inserted in batches inside one transaction.
// The sink owns db and closes it in Close.
type SQLSink struct {
	ctx       context.Context
	db        *sql.DB
	dialect   Dialect
	batchSize int
	logger    *slog.Logger
	closed    bool
}

// NewSQL creates a sink that writes through db. batchSize is the number of
// rows per INSERT statement.
func NewSQL(ctx context.Context, db *sql.DB, dialect Dialect, batchSize int) *SQLSink {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &SQLSink{
		ctx:       ctx,
		db:        db,
		dialect:   dialect,
		batchSize: batchSize,
		logger:    slog.Default().With("component", "sink", "dialect", dialect.Name()),
	}
}

func (s *SQLSink) WriteTable(name string, columns []string, rows [][]interface{}) error {
	if s.closed {
		return closedError(name)
	}

	table := s.dialect.Quote(name)
	drop := "DROP TABLE IF EXISTS " + table
	if _, err := s.db.ExecContext(s.ctx, drop); err != nil {
		return errors.SQLError("failed to drop table "+name, drop, err)
	}
	create := s.createStatement(name, columns, rows)
	if _, err := s.db.ExecContext(s.ctx, create); err != nil {
		return errors.SQLError("failed to create table "+name, create, err)
	}

	tx, err := s.db.BeginTx(s.ctx, nil)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSQLTransaction, "failed to begin transaction").
			WithContext("table", name)
	}

	for start := 0; start < len(rows); start += s.batchSize {
		end := min(start+s.batchSize, len(rows))
		query, args := s.insertStatement(name, columns, rows[start:end])
		if _, err := tx.ExecContext(s.ctx, query, args...); err != nil {
			tx.Rollback()
			return errors.SQLError("failed to insert into "+name, query, err).
				WithContext("table", name).
				WithContext("first_row", start)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, errors.ErrCodeSQLTransaction, "failed to commit transaction").
			WithContext("table", name)
	}

	s.logger.Debug("table loaded", "table", name, "rows", len(rows))
	return nil
}

// createStatement infers column types from the first row; an empty table
// gets text columns.
func (s *SQLSink) createStatement(name string, columns []string, rows [][]interface{}) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		var sample interface{}
		if len(rows) > 0 && i < len(rows[0]) {
			sample = rows[0][i]
		}
		def := s.dialect.Quote(c) + " " + s.dialect.ColumnType(sample)
		if i == 0 {
			def += " NOT NULL PRIMARY KEY"
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", s.dialect.Quote(name), strings.Join(defs, ", "))
}

func (s *SQLSink) insertStatement(name string, columns []string, rows [][]interface{}) (string, []interface{}) {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = s.dialect.Quote(c)
	}
	tuple := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", s.dialect.Quote(name), strings.Join(quoted, ", "))
	args := make([]interface{}, 0, len(rows)*len(columns))
	for i, row := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(tuple)
		args = append(args, row...)
	}
	return b.String(), args
}

// Close releases the database connection
func (s *SQLSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeConnectionFailed, "failed to close warehouse connection")
	}
	return nil
}
