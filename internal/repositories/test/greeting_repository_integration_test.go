package repositories_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/database"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/vo"
	"github.com/bionicotaku/lingo-services-greeter/internal/repositories"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/docker/go-connections/nat"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestGreetingRepository_InsertAndListRecent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	defer terminate()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	applyMigrations(ctx, t, pool)

	repo := repositories.NewGreetingRepository(pool, log.NewStdLogger(io.Discard))

	first, err := repo.Insert(ctx, nil, &po.GreetingLog{
		ID:      uuid.New(),
		Kind:    string(vo.GreetingKindSimple),
		Message: vo.SimpleFunction(),
	})
	require.NoError(t, err)
	require.False(t, first.CreatedAt.IsZero())

	// created_at 取事务开始时间，两次插入之间留出间隔以保证顺序确定。
	time.Sleep(10 * time.Millisecond)

	user := vo.NewUser("O'Brien")
	second, err := repo.Insert(ctx, nil, &po.GreetingLog{
		ID:      uuid.New(),
		Kind:    string(vo.GreetingKindUser),
		Name:    user.Name(),
		Message: user.Greet(),
	})
	require.NoError(t, err)

	recent, err := repo.ListRecent(ctx, nil, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, second.ID, recent[0].ID)
	require.Equal(t, "Hello, O'Brien!", recent[0].Message)
	require.Equal(t, "O'Brien", recent[0].Name)
	require.Equal(t, first.ID, recent[1].ID)
	require.Equal(t, "", recent[1].Name)

	limited, err := repo.ListRecent(ctx, nil, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, second.ID, limited[0].ID)
}

func TestGreetingRepository_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	defer terminate()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	applyMigrations(ctx, t, pool)

	repo := repositories.NewGreetingRepository(pool, log.NewStdLogger(io.Discard))
	_, err = repo.Insert(ctx, nil, &po.GreetingLog{ID: uuid.New(), Kind: "shout", Message: "HELLO"})
	require.Error(t, err)
}

func TestGreeterUsecase_LedgerRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn, terminate := startPostgres(ctx, t)
	defer terminate()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	applyMigrations(ctx, t, pool)

	logger := log.NewStdLogger(io.Discard)
	repo := repositories.NewGreetingRepository(pool, logger)
	txMgr, err := database.NewTxManager(pool, txmanager.Config{}, logger)
	require.NoError(t, err)
	require.NotNil(t, txMgr)

	uc, err := services.NewGreeterUsecase(repo, txMgr, noop.NewMeterProvider().Meter("test"), logger)
	require.NoError(t, err)

	for _, name := range []string{"Alice", "", "Bob"} {
		_, err := uc.GreetUser(ctx, name)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}
	simple, err := uc.SimpleGreeting(ctx)
	require.NoError(t, err)

	recent, err := uc.RecentGreetings(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	require.Equal(t, simple.ID, recent[0].ID)
	require.Equal(t, vo.GreetingKindSimple, recent[0].Kind)
	require.Equal(t, "Hello, Bob!", recent[1].Message)
	require.Equal(t, "Hello, !", recent[2].Message)
	require.Equal(t, "Hello, Alice!", recent[3].Message)

	two, err := uc.RecentGreetings(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
}

func TestGreetingRepository_NoPool(t *testing.T) {
	repo := repositories.NewGreetingRepository(nil, log.NewStdLogger(io.Discard))

	_, err := repo.Insert(context.Background(), nil, &po.GreetingLog{ID: uuid.New()})
	require.ErrorIs(t, err, repositories.ErrLedgerUnavailable)

	_, err = repo.ListRecent(context.Background(), nil, 5)
	require.ErrorIs(t, err, repositories.ErrLedgerUnavailable)
}

func startPostgres(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "greeter",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://postgres:postgres@%s:%s/greeter?sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skip greeting ledger integration: failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/greeter?sslmode=disable", host, port.Port())
	cleanup := func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}
	return dsn, cleanup
}

func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	migrationsDir := findMigrationsDir(t)
	entries, err := os.ReadDir(migrationsDir)
	require.NoError(t, err)

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		paths = append(paths, filepath.Join(migrationsDir, entry.Name()))
	}
	sort.Strings(paths)

	for _, path := range paths {
		sqlBytes, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		_, execErr := pool.Exec(ctx, string(sqlBytes))
		require.NoErrorf(t, execErr, "apply migration %s", filepath.Base(path))
	}
}

func findMigrationsDir(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for dir != "" && dir != "/" {
		candidate := filepath.Join(dir, "migrations")
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	t.Fatalf("migrations directory not found from working directory")
	return ""
}
