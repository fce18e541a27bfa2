package loader

import "time"

const (
	// defaultConfPath is the fallback configuration directory when no overrides are provided.
	defaultConfPath = "configs"
	// defaultServiceName 在 SERVICE_NAME 与编译期注入值均缺失时使用。
	defaultServiceName = "greeter"
	// defaultServiceVersion 在 SERVICE_VERSION 缺失时使用。
	defaultServiceVersion = "dev"
	// defaultEnvironment is used when APP_ENV is missing.
	defaultEnvironment = "development"
	// defaultInstanceID 在 os.Hostname 失败时使用。
	defaultInstanceID = "unknown-instance"
	// defaultGRPCMetricsEnabled toggles otelgrpc instrumentation when config omits explicit values.
	defaultGRPCMetricsEnabled = true
	// defaultGRPCIncludeHealth controls whether health check RPCs are exported by default.
	defaultGRPCIncludeHealth = false
	// defaultQueryTimeout 是查询类 Handler 的默认超时。
	defaultQueryTimeout = 3 * time.Second
)

var envAliases = map[string]string{
	"dev":  "development",
	"prod": "production",
	"stg":  "staging",
}
