package grpcclient_test

import (
	"io"
	"testing"

	configpb "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader/pb"
	clientinfra "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/grpc_client"

	"github.com/bionicotaku/lingo-utils/observability"
	"github.com/go-kratos/kratos/v2/log"
)

func TestNewGRPCClient_NoTarget(t *testing.T) {
	logger := log.NewStdLogger(io.Discard)
	metricsCfg := &observability.MetricsConfig{GRPCEnabled: true, GRPCIncludeHealth: false}
	for _, cfg := range []*configpb.Data{nil, {}, {GrpcClient: &configpb.GrpcClient{}}} {
		conn, cleanup, err := clientinfra.NewGRPCClient(cfg, metricsCfg, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conn != nil {
			t.Fatalf("expected nil connection when target missing")
		}
		if cleanup == nil {
			t.Fatalf("cleanup should always be non-nil")
		}
		cleanup()
	}
}

func TestNewGRPCClient_MetricsDisabled(t *testing.T) {
	logger := log.NewStdLogger(io.Discard)
	cfg := &configpb.Data{GrpcClient: &configpb.GrpcClient{Target: "dns:///127.0.0.1:1"}}
	conn, cleanup, err := clientinfra.NewGRPCClient(cfg, &observability.MetricsConfig{GRPCEnabled: false}, logger)
	if err != nil {
		t.Fatalf("NewGRPCClient error: %v", err)
	}
	if conn == nil {
		t.Fatalf("expected lazy connection")
	}
	cleanup()
}
