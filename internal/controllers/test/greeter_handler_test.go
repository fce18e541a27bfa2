// Package controllers_test 提供 controllers 层的黑盒测试。
package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/bionicotaku/lingo-services-greeter/api/greeter/v1"
	"github.com/bionicotaku/lingo-services-greeter/internal/controllers"
	"github.com/bionicotaku/lingo-services-greeter/internal/controllers/dto"
	loader "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ledgerStub struct {
	entries   []*po.GreetingLog
	listErr   error
	lastLimit int
}

func (s *ledgerStub) Insert(_ context.Context, _ txmanager.Session, entry *po.GreetingLog) (*po.GreetingLog, error) {
	saved := *entry
	saved.CreatedAt = time.Now().UTC()
	return &saved, nil
}

func (s *ledgerStub) ListRecent(_ context.Context, _ txmanager.Session, limit int) ([]*po.GreetingLog, error) {
	s.lastLimit = limit
	return s.entries, s.listErr
}

type noopSession struct{}

func (noopSession) Tx() pgx.Tx               { return nil }
func (noopSession) Context() context.Context { return context.Background() }

type noopTxManager struct{}

func (noopTxManager) WithinTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, noopSession{})
}

func (noopTxManager) WithinReadOnlyTx(ctx context.Context, _ txmanager.TxOptions, fn func(context.Context, txmanager.Session) error) error {
	return fn(ctx, noopSession{})
}

// newTestHandler 构造用于测试的 GreeterHandler；ledger 为 nil 时不接入账本。
func newTestHandler(t *testing.T, ledger *ledgerStub) *controllers.GreeterHandler {
	t.Helper()
	var (
		tx   txmanager.Manager
		repo services.GreetingLedger
	)
	if ledger != nil {
		tx = noopTxManager{}
		repo = ledger
	}
	uc, err := services.NewGreeterUsecase(repo, tx, noop.NewMeterProvider().Meter("test"), log.NewStdLogger(io.Discard))
	require.NoError(t, err)
	return controllers.NewGreeterHandler(uc, controllers.NewBaseHandler(loader.HandlerTimeouts{}))
}

func TestGreeterHandler_SimpleGreeting(t *testing.T) {
	h := newTestHandler(t, nil)

	reply, err := h.SimpleGreeting(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "Hello from Rust", reply.GetValue())
}

func TestGreeterHandler_GreetUser(t *testing.T) {
	h := newTestHandler(t, nil)

	cases := map[string]string{
		"Alice":    "Hello, Alice!",
		"":         "Hello, !",
		"O'Brien":  "Hello, O'Brien!",
		"<b>x</b>": "Hello, <b>x</b>!",
	}
	for name, want := range cases {
		reply, err := h.GreetUser(context.Background(), wrapperspb.String(name))
		require.NoError(t, err)
		assert.Equal(t, want, reply.GetValue(), "name=%q", name)
	}
}

func TestGreeterHandler_GreetUserNilRequest(t *testing.T) {
	h := newTestHandler(t, nil)

	reply, err := h.GreetUser(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello, !", reply.GetValue())
}

func TestGreeterHandler_ListGreetings(t *testing.T) {
	id := uuid.New()
	ledger := &ledgerStub{entries: []*po.GreetingLog{{
		ID:        id,
		Kind:      "user",
		Name:      "Alice",
		Message:   "Hello, Alice!",
		CreatedAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	}}}
	h := newTestHandler(t, ledger)

	list, err := h.ListGreetings(context.Background(), &v1.ListGreetingsRequest{Limit: 5})
	require.NoError(t, err)
	require.Len(t, list.GetGreetings(), 1)
	assert.Equal(t, 5, ledger.lastLimit)

	g := list.GetGreetings()[0]
	assert.Equal(t, id.String(), g.GetId())
	assert.Equal(t, "user", g.GetKind())
	assert.Equal(t, "Alice", g.GetName())
	assert.Equal(t, "Hello, Alice!", g.GetMessage())
	assert.Equal(t, time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC), g.GetCreatedAt().AsTime())
}

func TestGreeterHandler_ListGreetingsDefaultLimit(t *testing.T) {
	ledger := &ledgerStub{}
	h := newTestHandler(t, ledger)

	list, err := h.ListGreetings(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, list.GetGreetings())
	assert.Equal(t, services.DefaultListLimit, ledger.lastLimit)
}

func TestGreeterHandler_ListGreetingsFailure(t *testing.T) {
	h := newTestHandler(t, &ledgerStub{listErr: errors.New("boom")})

	_, err := h.ListGreetings(context.Background(), &v1.ListGreetingsRequest{Limit: 1})
	require.Error(t, err)
	assert.True(t, v1.IsLedgerQueryFailed(err))
}

func newHTTPServer(t *testing.T, ledger *ledgerStub) *khttp.Server {
	t.Helper()
	srv := khttp.NewServer()
	controllers.RegisterGreeterHTTPServer(srv, newTestHandler(t, ledger))
	return srv
}

func doGet(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestGreeterHTTP_SimpleGreeting(t *testing.T) {
	srv := newHTTPServer(t, nil)

	rec := doGet(t, srv, "/v1/greeting")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.GreetingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hello from Rust", body.Message)
}

func TestGreeterHTTP_GreetUser(t *testing.T) {
	srv := newHTTPServer(t, nil)

	cases := []struct {
		path string
		want string
	}{
		{path: "/v1/users/Alice/greeting", want: "Hello, Alice!"},
		{path: "/v1/users/O'Brien/greeting", want: "Hello, O'Brien!"},
		{path: "/v1/users/Jean%20Luc/greeting", want: "Hello, Jean Luc!"},
	}
	for _, tc := range cases {
		rec := doGet(t, srv, tc.path)
		require.Equal(t, http.StatusOK, rec.Code, tc.path)

		var body dto.GreetingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.want, body.Message)
	}
}

// TestGreeterHTTP_GreetUserQuery 覆盖路径路由无法表达的名字：空串与含 "/" 的名字。
func TestGreeterHTTP_GreetUserQuery(t *testing.T) {
	srv := newHTTPServer(t, nil)

	cases := []struct {
		target string
		want   string
	}{
		{target: "/v1/user-greeting?name=", want: "Hello, !"},
		{target: "/v1/user-greeting", want: "Hello, !"},
		{target: "/v1/user-greeting?name=a%2Fb", want: "Hello, a/b!"},
		{target: "/v1/user-greeting?name=O%27Brien", want: "Hello, O'Brien!"},
		{target: "/v1/user-greeting?name=%20", want: "Hello,  !"},
		{target: "/v1/user-greeting?name=%E4%B8%96%E7%95%8C", want: "Hello, 世界!"},
	}
	for _, tc := range cases {
		rec := doGet(t, srv, tc.target)
		require.Equal(t, http.StatusOK, rec.Code, tc.target)

		var body dto.GreetingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.want, body.Message, tc.target)
	}
}

func TestGreeterHTTP_ListGreetings(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 600, time.FixedZone("UTC+8", 8*3600))
	ledger := &ledgerStub{entries: []*po.GreetingLog{
		{ID: uuid.New(), Kind: "simple", Message: "Hello from Rust", CreatedAt: created},
	}}
	srv := newHTTPServer(t, ledger)

	rec := doGet(t, srv, "/v1/greetings?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, ledger.lastLimit)

	var body dto.GreetingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Greetings, 1)
	assert.Equal(t, "simple", body.Greetings[0].Kind)
	assert.Equal(t, "Hello from Rust", body.Greetings[0].Message)
	assert.Equal(t, "2026-01-01T19:04:05.0000006Z", body.Greetings[0].CreatedAt)
}

func TestGreeterHTTP_ListGreetingsInvalidLimit(t *testing.T) {
	srv := newHTTPServer(t, &ledgerStub{})

	for _, raw := range []string{"abc", "-1", "1.5"} {
		rec := doGet(t, srv, "/v1/greetings?limit="+raw)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", raw)
		assert.Contains(t, rec.Body.String(), v1.ErrorReasonInvalidArgument)
	}
}

func TestParseLimit(t *testing.T) {
	n, err := dto.ParseLimit("")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = dto.ParseLimit(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, uint32(42), n)

	_, err = dto.ParseLimit("4294967296")
	assert.Error(t, err)
}
