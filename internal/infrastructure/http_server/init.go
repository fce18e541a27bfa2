package httpserver

import "github.com/google/wire"

// ProviderSet bundles the HTTP server providers for Wire.
var ProviderSet = wire.NewSet(NewServerMetrics, NewHTTPServer)
