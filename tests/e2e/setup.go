//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	migrations = "migrations/001_initial_schema.sql"
)

// Containers are shared by every suite in the process; each suite gets its
// own database inside the Postgres container.
var (
	containersOnce sync.Once
	containersErr  error
	postgresAddr   endpoint
	redisAddr      endpoint
)

type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) String() string {
	return e.Host + ":" + e.Port.Port()
}

// SharedSuite boots the whole application against throwaway containers.
// Every subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	containersOnce.Do(startContainers)
	require.NoError(t, containersErr, "コンテナの起動に失敗")

	dbCfg := createDatabase(t)
	pool, closeDB, err := db.Connect(context.Background(), dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closeDB)
	require.NoError(t, applyMigrations(pool), "マイグレーションに失敗")

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis = config.RedisConfig{
		Enabled: true,
		Addr:    redisAddr.String(),
		TTL:     time.Minute,
		Prefix:  "e2e-" + dbCfg.DBName,
	}

	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}

func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		bootstrap.StatsModule,
		bootstrap.MessagingModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// createDatabase makes a uniquely named database and drops it when the suite
// ends. CREATE DATABASE can race with a container that is still warming up,
// hence the retries.
func createDatabase(t *testing.T) config.DBConfig {
	name := "hb_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, postgresAddr)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		pool, err := pgxpool.New(dropCtx, adminDSN)
		if err != nil {
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     postgresAddr.Host,
		Port:     postgresAddr.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// applyMigrations walks up from the package directory until it finds the
// schema file; go test runs each package in its own directory.
func applyMigrations(pool *pgxpool.Pool) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		sql, err := os.ReadFile(filepath.Join(dir, migrations))
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			_, err = pool.Exec(ctx, string(sql))
			return err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return fmt.Errorf("%s not found", migrations)
		}
		dir = parent
	}
}

func startContainers() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	postgresAddr, containersErr = run(ctx, testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}, "5432/tcp")
	if containersErr != nil {
		return
	}

	redisAddr, containersErr = run(ctx, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}, "6379/tcp")
}

// run starts a container and resolves its mapped port. Ryuk reaps the
// containers when the test process exits.
func run(ctx context.Context, req testcontainers.ContainerRequest, port nat.Port) (endpoint, error) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}
