package httpserver

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/middleware"
	kmetrics "github.com/go-kratos/kratos/v2/middleware/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/http_server"

// ServerMetrics bundles the Kratos request instruments recorded for HTTP routes.
// 指标导出由 observability.Init 安装的全局 MeterProvider 负责。
type ServerMetrics struct {
	RequestCounter   metric.Int64Counter
	SecondsHistogram metric.Float64Histogram
}

// NewServerMetrics prepares the request counter and latency histogram on the global meter provider.
func NewServerMetrics() (*ServerMetrics, error) {
	return NewServerMetricsWithMeter(otel.GetMeterProvider().Meter(meterName))
}

// NewServerMetricsWithMeter 使用指定 Meter 创建指标，便于测试注入 ManualReader。
func NewServerMetricsWithMeter(meter metric.Meter) (*ServerMetrics, error) {
	requestCounter, err := kmetrics.DefaultRequestsCounter(meter, kmetrics.DefaultServerRequestsCounterName)
	if err != nil {
		return nil, fmt.Errorf("create requests counter: %w", err)
	}
	secondsHistogram, err := kmetrics.DefaultSecondsHistogram(meter, kmetrics.DefaultServerSecondsHistogramName)
	if err != nil {
		return nil, fmt.Errorf("create seconds histogram: %w", err)
	}
	return &ServerMetrics{
		RequestCounter:   requestCounter,
		SecondsHistogram: secondsHistogram,
	}, nil
}

// Middleware 返回 Kratos metrics 中间件；nil 接收者返回 nil。
func (m *ServerMetrics) Middleware() middleware.Middleware {
	if m == nil {
		return nil
	}
	return kmetrics.Server(
		kmetrics.WithRequests(m.RequestCounter),
		kmetrics.WithSeconds(m.SecondsHistogram),
	)
}
