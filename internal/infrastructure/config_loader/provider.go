package loader

import (
	"time"

	configpb "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader/pb"

	obswire "github.com/bionicotaku/lingo-utils/observability"
	txconfig "github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/google/wire"
)

// ProviderSet exposes configuration-derived dependencies for Wire graphs.
// Bundle 本身由入口在 DI 之前通过 Build 构建并作为 injector 参数传入。
var ProviderSet = wire.NewSet(
	ProvideServiceMetadata,
	ProvideBootstrap,
	ProvideServerConfig,
	ProvideDataConfig,
	ProvideHandlerTimeouts,
	ProvideObservabilityConfig,
	ProvideMetricsConfig,
	ProvideTxConfig,
)

// HandlerTimeouts 是 Handler 层超时配置的扁平表示，避免 controllers 依赖配置包。
type HandlerTimeouts struct {
	Default time.Duration
	Query   time.Duration
}

// ProvideServiceMetadata returns the resolved ServiceMetadata from the bundle.
func ProvideServiceMetadata(b *Bundle) ServiceMetadata {
	if b == nil {
		return ServiceMetadata{}
	}
	return b.Service
}

// ProvideBootstrap exposes the strongly typed bootstrap configuration.
func ProvideBootstrap(b *Bundle) *configpb.Bootstrap {
	if b == nil {
		return nil
	}
	return b.Bootstrap
}

// ProvideServerConfig returns the server section of the bootstrap configuration.
func ProvideServerConfig(bc *configpb.Bootstrap) *configpb.Server {
	return bc.GetServer()
}

// ProvideDataConfig returns the data section of the bootstrap configuration.
func ProvideDataConfig(bc *configpb.Bootstrap) *configpb.Data {
	return bc.GetData()
}

// ProvideHandlerTimeouts 返回 Handler 超时，查询超时缺省为 3s。
func ProvideHandlerTimeouts(bc *configpb.Bootstrap) HandlerTimeouts {
	h := bc.GetHandlers()
	out := HandlerTimeouts{
		Default: h.GetDefaultTimeout().AsDuration(),
		Query:   defaultQueryTimeout,
	}
	if q := h.GetQueryTimeout().AsDuration(); q > 0 {
		out.Query = q
	}
	return out
}

// ProvideObservabilityConfig exposes the normalized observability configuration.
func ProvideObservabilityConfig(b *Bundle) obswire.ObservabilityConfig {
	if b == nil {
		return obswire.ObservabilityConfig{}
	}
	return b.ObsConfig
}

// ProvideMetricsConfig 返回指标配置，未配置时为 nil（由 gRPC 组件使用默认值）。
func ProvideMetricsConfig(cfg obswire.ObservabilityConfig) *obswire.MetricsConfig {
	return cfg.Metrics
}

// ProvideTxConfig 返回 txmanager 配置。
func ProvideTxConfig(b *Bundle) txconfig.Config {
	if b == nil {
		return txconfig.Config{}
	}
	return b.TxConfig
}
