// Package httpserver wires the inbound HTTP server, health endpoints and the JSON greeter routes.
package httpserver

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/controllers"
	configpb "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader/pb"

	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	propagatedPrefix = "x-greeter-"
	readinessTimeout = time.Second
)

// Pinger 是 readiness 检查依赖的最小接口，*pgxpool.Pool 满足该接口。
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer new an HTTP server.
// pool 为 nil 表示账本未启用，此时 /readyz 直接返回 200。
func NewHTTPServer(c *configpb.Server, metrics *ServerMetrics, pool *pgxpool.Pool, greeter *controllers.GreeterHandler, logger log.Logger) *http.Server {
	mws := []middleware.Middleware{
		recovery.Recovery(),
		obsTrace.Server(),
		metadata.Server(
			metadata.WithPropagatedPrefix(propagatedPrefix),
		),
	}
	if m := metrics.Middleware(); m != nil {
		mws = append(mws, m)
	}
	mws = append(mws, logging.Server(logger))

	var opts = []http.ServerOption{http.Middleware(mws...)}
	if ep := c.GetHttp(); ep != nil {
		if ep.GetNetwork() != "" {
			opts = append(opts, http.Network(ep.GetNetwork()))
		}
		if ep.GetAddr() != "" {
			opts = append(opts, http.Address(ep.GetAddr()))
		}
		if d := ep.GetTimeout().AsDuration(); d > 0 {
			opts = append(opts, http.Timeout(d))
		}
	}

	srv := http.NewServer(opts...)

	srv.Handle("/healthz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
	}))

	var pinger Pinger
	if pool != nil {
		pinger = pool
	}
	srv.Handle("/readyz", ReadinessHandler(pinger, logger))

	controllers.RegisterGreeterHTTPServer(srv, greeter)
	return srv
}

// ReadinessHandler 返回 readiness 检查：数据库不可达时返回 503。
func ReadinessHandler(db Pinger, logger log.Logger) stdhttp.Handler {
	helper := log.NewHelper(logger)
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		if db == nil {
			w.WriteHeader(stdhttp.StatusOK)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			helper.WithContext(ctx).Warnf("readiness: postgres ping failed: %v", err)
			w.WriteHeader(stdhttp.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(stdhttp.StatusOK)
	})
}
