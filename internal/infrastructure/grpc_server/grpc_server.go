// Package grpcserver wires the inbound gRPC server and its middleware stack.
package grpcserver

import (
	v1 "github.com/bionicotaku/lingo-services-greeter/api/greeter/v1"
	"github.com/bionicotaku/lingo-services-greeter/internal/controllers"
	configpb "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader/pb"

	"github.com/bionicotaku/lingo-utils/observability"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/grpc"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	otelgrpcfilters "go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc/filters"
	"go.opentelemetry.io/otel"
	stdgrpc "google.golang.org/grpc"
	"google.golang.org/grpc/stats"
)

// PropagatedPrefix 是在服务间透传的 metadata 前缀。
const PropagatedPrefix = "x-greeter-"

// NewGRPCServer new a gRPC server.
func NewGRPCServer(c *configpb.Server, metricsCfg *observability.MetricsConfig, greeter *controllers.GreeterHandler, logger log.Logger) *grpc.Server {
	// metricsCfg 可为空，此时默认开启 gRPC 指标。
	metricsEnabled := true
	includeHealth := false
	if metricsCfg != nil {
		metricsEnabled = metricsCfg.GRPCEnabled
		includeHealth = metricsCfg.GRPCIncludeHealth
	}

	opts := []grpc.ServerOption{
		grpc.Middleware(
			obsTrace.Server(),
			recovery.Recovery(),
			metadata.Server(
				metadata.WithPropagatedPrefix(PropagatedPrefix),
			),
			ratelimit.Server(),
			logging.Server(logger),
		),
	}
	if metricsEnabled {
		handler := newServerHandler(includeHealth)
		opts = append(opts, grpc.Options(stdgrpc.StatsHandler(handler)))
	}
	if ep := c.GetGrpc(); ep != nil {
		if ep.GetNetwork() != "" {
			opts = append(opts, grpc.Network(ep.GetNetwork()))
		}
		if ep.GetAddr() != "" {
			opts = append(opts, grpc.Address(ep.GetAddr()))
		}
		if d := ep.GetTimeout().AsDuration(); d > 0 {
			opts = append(opts, grpc.Timeout(d))
		}
	}
	srv := grpc.NewServer(opts...)
	v1.RegisterGreeterServer(srv, greeter)
	return srv
}

func newServerHandler(includeHealth bool) stats.Handler {
	opts := []otelgrpc.Option{
		otelgrpc.WithMeterProvider(otel.GetMeterProvider()),
	}
	if !includeHealth {
		opts = append(opts, otelgrpc.WithFilter(otelgrpcfilters.Not(otelgrpcfilters.HealthCheck())))
	}
	return otelgrpc.NewServerHandler(opts...)
}
