package storage

import (
	"fmt"
	"net"
	"net/url"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"azadi_backend/internals/configs"
)

// Backend is a relational store the repositories can run on.
// Exactly one backend is chosen at start from database.driver.
type Backend interface {
	Name() string
	Dialector() gorm.Dialector
}

func NewBackend(cfg configs.DatabaseConfig) (Backend, error) {
	switch cfg.Driver {
	case "postgres":
		return &PostgresBackend{cfg: cfg}, nil
	case "mysql":
		return &MySQLBackend{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

/* =========================
   PostgreSQL
   ========================= */

type PostgresBackend struct {
	cfg configs.DatabaseConfig
}

func (b *PostgresBackend) Name() string { return "postgres" }

// DSN prefers the full URL, otherwise builds one from the parts.
func (b *PostgresBackend) DSN() string {
	if b.cfg.URL != "" {
		return b.cfg.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(b.cfg.User, b.cfg.Password),
		Host:   net.JoinHostPort(b.cfg.Host, b.cfg.Port),
		Path:   "/" + b.cfg.Name,
	}
	q := u.Query()
	q.Set("sslmode", b.cfg.SSLMode)
	q.Set("application_name", "azadi")
	u.RawQuery = q.Encode()
	return u.String()
}

func (b *PostgresBackend) Dialector() gorm.Dialector {
	return postgres.New(postgres.Config{
		DSN:                  b.DSN(),
		PreferSimpleProtocol: true, // 👍 PgBouncer friendly
	})
}

/* =========================
   MySQL
   ========================= */

type MySQLBackend struct {
	cfg configs.DatabaseConfig
}

func (b *MySQLBackend) Name() string { return "mysql" }

func (b *MySQLBackend) DSN() string {
	mc := mysqldrv.NewConfig()
	mc.User = b.cfg.User
	mc.Passwd = b.cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(b.cfg.Host, b.cfg.Port)
	mc.DBName = b.cfg.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Collation = "utf8mb4_unicode_ci" // Bengali text
	return mc.FormatDSN()
}

func (b *MySQLBackend) Dialector() gorm.Dialector {
	return mysql.New(mysql.Config{DSN: b.DSN()})
}

/* =========================
   Open
   ========================= */

// Open connects to the backend and applies the pool settings.
func Open(b Backend, cfg configs.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(b.Dialector(), &gorm.Config{
		Logger:         configs.NewGormLogger(cfg.SlowThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", b.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("pool %s: %w", b.Name(), err)
	}
	// ⚖️ pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info().Str("backend", b.Name()).Msg("✅ database connected")
	return db, nil
}
