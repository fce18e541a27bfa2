// Package grpcclient configures outbound gRPC connections used by clients.
package grpcclient

import (
	"context"

	configpb "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader/pb"

	"github.com/bionicotaku/lingo-utils/observability"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/circuitbreaker"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	kgrpc "github.com/go-kratos/kratos/v2/transport/grpc"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	otelgrpcfilters "go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc/filters"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/stats"
)

// NewGRPCClient dials the configured greeter target with common Kratos middlewares applied.
// 未配置 target 时返回 nil 连接与空 cleanup，调用方据此降级为进程内渲染。
func NewGRPCClient(c *configpb.Data, metricsCfg *observability.MetricsConfig, logger log.Logger) (*grpc.ClientConn, func(), error) {
	helper := log.NewHelper(logger)

	target := c.GetGrpcClient().GetTarget()
	if target == "" {
		helper.Warn("grpc client target not configured; remote calls disabled")
		return nil, func() {}, nil
	}

	metricsEnabled := true
	includeHealth := false
	if metricsCfg != nil {
		metricsEnabled = metricsCfg.GRPCEnabled
		includeHealth = metricsCfg.GRPCIncludeHealth
	}

	opts := []kgrpc.ClientOption{
		kgrpc.WithEndpoint(target),
		kgrpc.WithMiddleware(
			recovery.Recovery(),
			metadata.Client(),
			obsTrace.Client(),
			circuitbreaker.Client(),
		),
	}
	if metricsEnabled {
		opts = append(opts, kgrpc.WithOptions(grpc.WithStatsHandler(newClientHandler(includeHealth))))
	}

	conn, err := kgrpc.DialInsecure(context.Background(), opts...)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			helper.Errorf("close grpc client: %v", err)
		}
	}

	return conn, cleanup, nil
}

func newClientHandler(includeHealth bool) stats.Handler {
	opts := []otelgrpc.Option{
		otelgrpc.WithMeterProvider(otel.GetMeterProvider()),
	}
	if !includeHealth {
		opts = append(opts, otelgrpc.WithFilter(otelgrpcfilters.Not(otelgrpcfilters.HealthCheck())))
	}
	return otelgrpc.NewClientHandler(opts...)
}
