// Package services contains application use case orchestration.
package services

import (
	"github.com/google/wire"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/bionicotaku/lingo-services-greeter/internal/services"

// ProviderSet is services providers.
var ProviderSet = wire.NewSet(NewGreeterUsecase, ProvideMeter)

// ProvideMeter 返回全局 MeterProvider（observability.Init 之后生效）上的 Meter。
func ProvideMeter() metric.Meter {
	return otel.Meter(meterName)
}
