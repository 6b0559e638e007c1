// Package postgres implements the storage interfaces on PostgreSQL. Queries
// are built with goqu over a database/sql wrapper of a pgx pool, which is also
// the handle used by goose and River.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"linkaudit"
	"linkaudit/pkg/storage"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// ApplicationName is reported to PostgreSQL for every connection of the pool.
const ApplicationName = "linkaudit"

// Options defines the configuration parameters for PostgreSQL database connection.
type Options struct {
	Username string
	Password string
	Host     string
	// SslMode is passed as libpq's sslmode, e.g. "disable" or "require".
	SslMode  string
	Port     int
	Database string
	// ConnMaxLifetime and ConnMaxIdleTime bound how long a pooled connection is reused.
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections caps the pool size and MaxIdleConnections is the
	// number of connections it keeps open when idle.
	MaxOpenConnections int
	MaxIdleConnections int
}

// connString renders options as a postgres:// URL so that credentials holding
// spaces, quotes or '@' survive intact.
func (o Options) connString() string {
	q := url.Values{}
	q.Set("application_name", ApplicationName)
	if o.SslMode != "" {
		q.Set("sslmode", o.SslMode)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.Username, o.Password),
		Host:     net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:     "/" + o.Database,
		RawQuery: q.Encode(),
	}

	return u.String()
}

// poolConfig applies the pool limits of options on top of the parsed URL.
func (o Options) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(o.connString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if o.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(o.MaxOpenConnections) //nolint: gosec
	}
	if o.MaxIdleConnections > 0 {
		cfg.MinConns = min(int32(o.MaxIdleConnections), cfg.MaxConns) //nolint: gosec
	}
	if o.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = o.ConnMaxIdleTime
	}

	return cfg, nil
}

// DB is the part of database/sql shared by *sql.DB and *sql.Tx, so that the
// audit queries run unchanged inside and outside a transaction.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the part of goqu shared by a database and a transaction handle.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// PgSQL implements storage.Storage and, once Begin was called, storage.TxStorage.
type PgSQL struct {
	// DB is a *sql.DB outside a transaction and a *sql.Tx inside one.
	DB      DB
	Builder Builder
	// Pool is the pgx pool behind DB. It is nil on transactional handles.
	Pool *pgxpool.Pool
}

func (p *PgSQL) sqlDB() (*sql.DB, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	return db, nil
}

func (p *PgSQL) sqlTx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

// Close releases the database/sql wrapper, then the pool underneath it.
func (p *PgSQL) Close() error {
	var err error
	if db, dbErr := p.sqlDB(); dbErr == nil {
		err = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}
	if err != nil {
		return fmt.Errorf("could not close sql db: %w", err)
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx
// outside a transaction.
func (p *PgSQL) Commit() error {
	tx, err := p.sqlTx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx
// outside a transaction.
func (p *PgSQL) Rollback() error {
	tx, err := p.sqlTx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin opens a transaction. Nested transactions are not supported and yield
// storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, err := p.sqlDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
	}, nil
}

// WithTx runs cb in a transaction that is committed when cb returns nil and
// rolled back when it fails or panics.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// MigrationReport lists what Migrate applied. Both slices are empty when the
// database was already up to date.
type MigrationReport struct {
	// Audits holds the goose versions applied to the audits schema.
	Audits []int64
	// River holds the River job table versions applied.
	River []int
}

// Migrate brings the audits schema embedded in linkaudit.Migrations and the
// River job tables to their latest versions. It must not be called inside a
// transaction.
func (p *PgSQL) Migrate(ctx context.Context) (MigrationReport, error) {
	var report MigrationReport

	db, err := p.sqlDB()
	if err != nil {
		return report, err
	}

	migrations, err := fs.Sub(linkaudit.Migrations, "migrations")
	if err != nil {
		return report, fmt.Errorf("could not open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return report, fmt.Errorf("could not create goose provider: %w", err)
	}
	applied, err := provider.Up(ctx)
	if err != nil {
		return report, fmt.Errorf("could not migrate audits schema: %w", err)
	}
	for _, res := range applied {
		report.Audits = append(report.Audits, res.Source.Version)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return report, fmt.Errorf("could not create river migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return report, fmt.Errorf("could not migrate river tables: %w", err)
	}
	for _, v := range res.Versions {
		report.River = append(report.River, v.Version)
	}

	return report, nil
}

// New connects to PostgreSQL and verifies the connection with a ping.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := options.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach pgsql: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}
