package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kampfschwein/schweinchen-tcg/internal/gateways/database/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultConnTimeout   = 5 * time.Second
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
	slowQueryThreshold   = 500 * time.Millisecond
)

type DBConfig struct {
	// URL, or DATABASE_URL from the environment, wins over the discrete fields.
	URL          string `toml:"url"`
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	SSLMode      string `toml:"ssl_mode"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

func (c DBConfig) sslMode() string {
	if c.SSLMode != "" {
		return c.SSLMode
	}
	if env := os.Getenv("PG_SSLMODE"); env != "" {
		return env
	}
	return "disable"
}

func (c DBConfig) dsn() string {
	if c.URL != "" {
		return c.URL
	}
	if env := os.Getenv("DATABASE_URL"); env != "" {
		return env
	}
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&connect_timeout=5",
		c.User, c.Password, net.JoinHostPort(c.Host, strconv.Itoa(c.Port)), c.Database, c.sslMode())
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	addr := net.JoinHostPort(poolConfig.ConnConfig.Host, strconv.Itoa(int(poolConfig.ConnConfig.Port)))
	for i := 0; i < defaultMaxRetries; i++ {
		var conn net.Conn
		conn, err = net.DialTimeout("tcp", addr, defaultConnTimeout)
		if err == nil {
			conn.Close()
			break
		}
		slog.Warn("Database not reachable, retrying",
			slog.String("type", "db"),
			slog.String("addr", addr),
			slog.Int("attempt", i+1),
			slog.Any("error", err),
		)
		time.Sleep(defaultRetryInterval)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", defaultMaxRetries, err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.dsn())))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}

	bunDB := bun.NewDB(sqldb, pgdialect.New())
	bunDB.AddQueryHook(NewQueryHook(slowQueryThreshold))

	return &DB{pool: pool, bunDB: bunDB}, nil
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	duration := time.Since(start)

	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", "exec"),
			slog.String("query", sql),
			slog.Any("args", args),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return result, err
	}

	slog.Info("Query executed",
		slog.String("type", "db"),
		slog.String("operation", "exec"),
		slog.String("query", sql),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", result.RowsAffected()),
	)
	return result, nil
}

// InitializeSchema creates user_cards and its indexes. Safe to run on every start.
func (db *DB) InitializeSchema(ctx context.Context) error {
	_, err := db.bunDB.NewCreateTable().
		Model((*models.OwnershipRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_user_cards_username_lower ON user_cards (LOWER(username));",
		"CREATE INDEX IF NOT EXISTS idx_user_cards_username_card ON user_cards (username, card_name);",
	}
	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// NormalizeUsernames rewrites legacy mixed-case or padded usernames to their stored form.
func (db *DB) NormalizeUsernames(ctx context.Context) (int64, error) {
	tag, err := db.ExecWithLog(ctx,
		`UPDATE user_cards SET username = LOWER(TRIM(username)) WHERE username <> LOWER(TRIM(username))`)
	if err != nil {
		return 0, fmt.Errorf("failed to normalize usernames: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Ping verifies both connections are working.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pgxpool ping failed: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping failed: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}
