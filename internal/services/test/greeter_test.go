package services_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	v1 "github.com/bionicotaku/lingo-services-greeter/api/greeter/v1"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/vo"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type ledgerStub struct {
	inserted  []*po.GreetingLog
	insertErr error
	entries   []*po.GreetingLog
	listErr   error
	lastLimit int
	createdAt time.Time
}

func (s *ledgerStub) Insert(_ context.Context, _ txmanager.Session, entry *po.GreetingLog) (*po.GreetingLog, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	saved := *entry
	saved.CreatedAt = s.createdAt
	s.inserted = append(s.inserted, &saved)
	return &saved, nil
}

func (s *ledgerStub) ListRecent(_ context.Context, _ txmanager.Session, limit int) ([]*po.GreetingLog, error) {
	s.lastLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.entries, nil
}

type noopSession struct{}

func (noopSession) Tx() pgx.Tx               { return nil }
func (noopSession) Context() context.Context { return context.Background() }

type noopTxManager struct {
	writes int
	reads  int
}

func (m *noopTxManager) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	m.writes++
	return fn(ctx, noopSession{})
}

func (m *noopTxManager) WithinReadOnlyTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	m.reads++
	return fn(ctx, noopSession{})
}

type usecaseEnv struct {
	uc     *services.GreeterUsecase
	ledger *ledgerStub
	tx     *noopTxManager
	reader *sdkmetric.ManualReader
}

func newUsecaseEnv(t *testing.T, withLedger bool) *usecaseEnv {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	env := &usecaseEnv{
		ledger: &ledgerStub{createdAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		reader: reader,
	}
	var tx txmanager.Manager
	if withLedger {
		env.tx = &noopTxManager{}
		tx = env.tx
	}
	uc, err := services.NewGreeterUsecase(env.ledger, tx, mp.Meter("test"), log.NewStdLogger(io.Discard))
	require.NoError(t, err)
	env.uc = uc
	return env
}

func (e *usecaseEnv) renderedByKind(t *testing.T) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, e.reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "greeter.greetings.rendered" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "unexpected data type %T", m.Data)
			for _, dp := range sum.DataPoints {
				kind, _ := dp.Attributes.Value("kind")
				out[kind.AsString()] += dp.Value
			}
		}
	}
	return out
}

func TestGreeterUsecase_SimpleGreeting(t *testing.T) {
	env := newUsecaseEnv(t, true)

	greeting, err := env.uc.SimpleGreeting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello from Rust", greeting.Message)
	assert.Equal(t, vo.GreetingKindSimple, greeting.Kind)
	assert.Empty(t, greeting.Name)
	assert.NotEqual(t, uuid.Nil, greeting.ID)

	require.Len(t, env.ledger.inserted, 1)
	assert.Equal(t, greeting.ID, env.ledger.inserted[0].ID)
	assert.Equal(t, "simple", env.ledger.inserted[0].Kind)
	assert.Equal(t, env.ledger.createdAt, greeting.CreatedAt)
	assert.Equal(t, map[string]int64{"simple": 1}, env.renderedByKind(t))
}

func TestGreeterUsecase_GreetUser(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Alice", want: "Hello, Alice!"},
		{input: "", want: "Hello, !"},
		{input: "O'Brien", want: "Hello, O'Brien!"},
	}

	env := newUsecaseEnv(t, true)
	for _, tt := range tests {
		greeting, err := env.uc.GreetUser(context.Background(), tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, greeting.Message)
		assert.Equal(t, tt.input, greeting.Name)
		assert.Equal(t, vo.GreetingKindUser, greeting.Kind)
	}

	require.Len(t, env.ledger.inserted, len(tests))
	assert.Equal(t, 3, env.tx.writes)
	assert.Equal(t, map[string]int64{"user": 3}, env.renderedByKind(t))
}

func TestGreeterUsecase_LedgerFailureDoesNotFailGreeting(t *testing.T) {
	env := newUsecaseEnv(t, true)
	env.ledger.insertErr = errors.New("connection refused")

	greeting, err := env.uc.GreetUser(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Alice!", greeting.Message)
	assert.False(t, greeting.CreatedAt.IsZero())
}

func TestGreeterUsecase_WithoutLedger(t *testing.T) {
	env := newUsecaseEnv(t, false)

	greeting, err := env.uc.GreetUser(context.Background(), "Bob")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Bob!", greeting.Message)
	assert.Empty(t, env.ledger.inserted)

	list, err := env.uc.RecentGreetings(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, map[string]int64{"user": 1}, env.renderedByKind(t))
}

func TestGreeterUsecase_RecentGreetings(t *testing.T) {
	env := newUsecaseEnv(t, true)
	now := time.Now().UTC()
	env.ledger.entries = []*po.GreetingLog{
		{ID: uuid.New(), Kind: "user", Name: "Alice", Message: "Hello, Alice!", CreatedAt: now},
		{ID: uuid.New(), Kind: "simple", Message: "Hello from Rust", CreatedAt: now.Add(-time.Minute)},
	}

	list, err := env.uc.RecentGreetings(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Hello, Alice!", list[0].Message)
	assert.Equal(t, vo.GreetingKindSimple, list[1].Kind)
	assert.Equal(t, 5, env.ledger.lastLimit)
	assert.Equal(t, 1, env.tx.reads)
}

func TestGreeterUsecase_RecentGreetingsLimitClamp(t *testing.T) {
	env := newUsecaseEnv(t, true)

	cases := map[int]int{
		0:    services.DefaultListLimit,
		-3:   services.DefaultListLimit,
		1:    1,
		100:  100,
		1000: services.MaxListLimit,
	}
	for input, want := range cases {
		_, err := env.uc.RecentGreetings(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, want, env.ledger.lastLimit, "limit %d", input)
	}
}

func TestGreeterUsecase_RecentGreetingsErrors(t *testing.T) {
	env := newUsecaseEnv(t, true)

	env.ledger.listErr = context.DeadlineExceeded
	_, err := env.uc.RecentGreetings(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, v1.IsQueryTimeout(err))

	env.ledger.listErr = errors.New("boom")
	_, err = env.uc.RecentGreetings(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, v1.IsLedgerQueryFailed(err))
}
