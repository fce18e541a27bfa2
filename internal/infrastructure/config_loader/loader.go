// Package loader 负责加载 bootstrap 配置、应用环境变量覆盖并推导服务元信息。
package loader

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	configpb "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader/pb"
	loginfra "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/logger"

	obswire "github.com/bionicotaku/lingo-utils/observability"
	txconfig "github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/bufbuild/protovalidate-go"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/joho/godotenv"
)

const (
	envConfPath       = "CONF_PATH"
	envServiceName    = "SERVICE_NAME"
	envServiceVersion = "SERVICE_VERSION"
	envAppEnv         = "APP_ENV"
	envDatabaseURL    = "DATABASE_URL"
	envPort           = "PORT"
)

var envFileNames = []string{".env.local", ".env"}

// Params 包含构造配置 Bundle 所需的运行时输入参数。
type Params struct {
	ConfPath       string // 配置文件路径（可为空，使用默认值）
	ServiceName    string // 编译期注入的服务名，SERVICE_NAME 优先
	ServiceVersion string // 编译期注入的版本号，SERVICE_VERSION 优先
}

// ServiceMetadata 保存服务标识信息，供日志和可观测性组件使用。
type ServiceMetadata struct {
	Name        string
	Version     string
	Environment string
	InstanceID  string
}

// Bundle 聚合强类型的配置片段，供下游 Wire 注入使用。
type Bundle struct {
	Bootstrap *configpb.Bootstrap
	ObsConfig obswire.ObservabilityConfig
	Service   ServiceMetadata
	TxConfig  txconfig.Config
}

// BuildError 捕获配置构建过程中的上下文错误信息。
type BuildError struct {
	Stage string
	Path  string
	Err   error
}

// Error 实现 error 接口，提供包含上下文的错误信息。
func (e BuildError) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("config %s at %q: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Stage, e.Err)
}

// Unwrap 暴露底层错误，支持 errors.Is/As 链式查询。
func (e BuildError) Unwrap() error {
	return e.Err
}

// ObservabilityInfo 将服务元信息转换为 observability.ServiceInfo。
func (m ServiceMetadata) ObservabilityInfo() obswire.ServiceInfo {
	return obswire.ServiceInfo{
		Name:        m.Name,
		Version:     m.Version,
		Environment: m.Environment,
	}
}

// LoggerConfig 将服务元信息转换为 logger.Config。
func (m ServiceMetadata) LoggerConfig() loginfra.Config {
	return loginfra.Config{
		Service: m.Name,
		Version: m.Version,
		HostID:  m.InstanceID,
		Env:     m.Environment,
	}
}

// ParseConfPath 解析命令行中的 -conf 参数，未提供时返回空字符串交由 ResolveConfPath 回退。
func ParseConfPath(fs *flag.FlagSet, args []string) (string, error) {
	var confPath string
	fs.StringVar(&confPath, "conf", "", "config path, eg: -conf configs/config.yaml")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return confPath, nil
}

// Build 从 bootstrap 配置文件构建 Bundle，包含配置对象和服务元信息。
//
// 流程：
// 1. 解析配置路径（应用回退规则）并加载 .env 文件
// 2. 加载配置、应用环境变量覆盖并执行 protovalidate 校验
// 3. 推导服务元信息（来自环境变量/编译期参数/默认值）
// 4. 转换可观测性与事务配置
func Build(params Params) (*Bundle, error) {
	confPath := ResolveConfPath(params.ConfPath)
	loadEnvFiles(confPath)

	bootstrap, err := loadBootstrap(confPath)
	if err != nil {
		return nil, err
	}

	meta := buildServiceMetadata(params)

	return &Bundle{
		Bootstrap: bootstrap,
		ObsConfig: toObservabilityConfig(bootstrap.GetObservability()),
		Service:   meta,
		TxConfig:  toTxManagerConfig(bootstrap.GetData().GetPostgres()),
	}, nil
}

// ResolveConfPath 应用回退规则确定要加载的配置目录/文件路径。
// 优先级：显式传入路径 > CONF_PATH 环境变量 > 默认路径。
func ResolveConfPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(envConfPath); env != "" {
		return env
	}
	return defaultConfPath
}

// loadBootstrap 从指定路径加载并解析 Bootstrap 配置。
//
// 错误阶段：
//   - "load": 文件读取失败（文件不存在、权限不足）
//   - "scan": YAML/JSON 解析失败（格式错误、类型不匹配）
//   - "init_validator": protovalidate 初始化失败
//   - "validate": 配置不满足 conf.proto 中的约束
func loadBootstrap(confPath string) (*configpb.Bootstrap, error) {
	c := config.New(config.WithSource(file.NewSource(confPath)))
	if err := c.Load(); err != nil {
		return nil, BuildError{Stage: "load", Path: confPath, Err: err}
	}
	defer c.Close()

	var bc configpb.Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, BuildError{Stage: "scan", Path: confPath, Err: err}
	}
	applyEnvOverrides(&bc)

	validator, err := protovalidate.New()
	if err != nil {
		return nil, BuildError{Stage: "init_validator", Path: confPath, Err: err}
	}
	if err := validator.Validate(&bc); err != nil {
		return nil, BuildError{Stage: "validate", Path: confPath, Err: err}
	}
	return &bc, nil
}

// applyEnvOverrides 应用环境变量覆盖配置文件中的特定字段。
//
// 支持的环境变量：
//
//   - DATABASE_URL: 覆盖 data.postgres.dsn，缺少 data/postgres 节点时自动创建
//   - PORT: 覆盖 server.grpc.addr 的端口部分（保留 host）
//     示例: PORT=8080 -> "0.0.0.0:9000" 变为 "0.0.0.0:8080"
func applyEnvOverrides(bc *configpb.Bootstrap) {
	if bc == nil {
		return
	}
	if dsn := os.Getenv(envDatabaseURL); dsn != "" {
		if bc.Data == nil {
			bc.Data = &configpb.Data{}
		}
		if bc.Data.Postgres == nil {
			bc.Data.Postgres = &configpb.Postgres{}
		}
		bc.Data.Postgres.Dsn = dsn
	}
	if port := os.Getenv(envPort); port != "" {
		if grpc := bc.GetServer().GetGrpc(); grpc != nil {
			grpc.Addr = replacePort(grpc.Addr, port)
		}
	}
}

// buildServiceMetadata 构建服务元信息，用于日志、追踪和指标标签。
// 优先级：环境变量 > 编译期参数 > 默认值。
func buildServiceMetadata(params Params) ServiceMetadata {
	host, _ := os.Hostname()
	return ServiceMetadata{
		Name:        resolveServiceName(firstNonEmpty(os.Getenv(envServiceName), params.ServiceName)),
		Version:     resolveServiceVersion(firstNonEmpty(os.Getenv(envServiceVersion), params.ServiceVersion)),
		Environment: resolveEnvironment(os.Getenv(envAppEnv)),
		InstanceID:  resolveInstanceID(host),
	}
}

func resolveServiceName(name string) string {
	return firstNonEmpty(strings.TrimSpace(name), defaultServiceName)
}

func resolveServiceVersion(version string) string {
	return firstNonEmpty(strings.TrimSpace(version), defaultServiceVersion)
}

func resolveEnvironment(env string) string {
	env = strings.ToLower(strings.TrimSpace(env))
	if env == "" {
		return defaultEnvironment
	}
	if alias, ok := envAliases[env]; ok {
		return alias
	}
	return env
}

func resolveInstanceID(host string) string {
	return firstNonEmpty(strings.TrimSpace(host), defaultInstanceID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadEnvFiles best-effort 加载配置相关的 .env 文件，失败时忽略以保持幂等。
// godotenv 不会覆盖已存在的环境变量。
func loadEnvFiles(confPath string) {
	files := envFileCandidates(confPath)
	if len(files) == 0 {
		return
	}
	_ = godotenv.Load(files...)
}

// envFileCandidates 按优先级返回存在的 .env 文件：confPath 所在目录优先于工作目录，
// 同一目录内 .env.local 优先于 .env。
func envFileCandidates(confPath string) []string {
	seen := make(map[string]struct{})
	var files []string
	for _, dir := range orderedDirs(confPath) {
		for _, name := range envFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			files = append(files, candidate)
			seen[candidate] = struct{}{}
		}
	}
	return files
}

func orderedDirs(confPath string) []string {
	var dirs []string
	appendUnique := func(path string) {
		if path == "" {
			return
		}
		clean := filepath.Clean(path)
		for _, existing := range dirs {
			if existing == clean {
				return
			}
		}
		dirs = append(dirs, clean)
	}

	if confPath != "" {
		if info, err := os.Stat(confPath); err == nil {
			if info.IsDir() {
				appendUnique(confPath)
			} else {
				appendUnique(filepath.Dir(confPath))
			}
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		appendUnique(cwd)
	}
	return dirs
}

// toObservabilityConfig 将配置文件中的 observability 节点转换为 observability 包的规范化结构。
func toObservabilityConfig(src *configpb.Observability) obswire.ObservabilityConfig {
	if src == nil {
		return obswire.ObservabilityConfig{}
	}
	cfg := obswire.ObservabilityConfig{
		GlobalAttributes: cloneStringMap(src.GlobalAttributes),
	}
	if tr := src.Tracing; tr != nil {
		cfg.Tracing = &obswire.TracingConfig{
			Enabled:            tr.Enabled,
			Exporter:           tr.Exporter,
			Endpoint:           tr.Endpoint,
			Headers:            cloneStringMap(tr.Headers),
			Insecure:           tr.Insecure,
			SamplingRatio:      tr.SamplingRatio,
			BatchTimeout:       tr.GetBatchTimeout().AsDuration(),
			ExportTimeout:      tr.GetExportTimeout().AsDuration(),
			MaxQueueSize:       int(tr.MaxQueueSize),
			MaxExportBatchSize: int(tr.MaxExportBatchSize),
			Required:           tr.Required,
		}
	}
	if mt := src.Metrics; mt != nil {
		grpcEnabled := defaultGRPCMetricsEnabled
		if mt.GrpcEnabled != nil {
			grpcEnabled = mt.GetGrpcEnabled()
		}
		grpcIncludeHealth := defaultGRPCIncludeHealth
		if mt.GrpcIncludeHealth != nil {
			grpcIncludeHealth = mt.GetGrpcIncludeHealth()
		}
		cfg.Metrics = &obswire.MetricsConfig{
			Enabled:             mt.Enabled,
			Exporter:            mt.Exporter,
			Endpoint:            mt.Endpoint,
			Headers:             cloneStringMap(mt.Headers),
			Insecure:            mt.Insecure,
			Interval:            mt.GetInterval().AsDuration(),
			DisableRuntimeStats: mt.DisableRuntimeStats,
			Required:            mt.Required,
			GRPCEnabled:         grpcEnabled,
			GRPCIncludeHealth:   grpcIncludeHealth,
		}
	}
	return cfg
}

func toTxManagerConfig(pg *configpb.Postgres) txconfig.Config {
	if pg == nil || pg.Transaction == nil {
		return txconfig.Config{}
	}
	tx := pg.Transaction
	cfg := txconfig.Config{
		DefaultIsolation: tx.DefaultIsolation,
		DefaultTimeout:   tx.GetDefaultTimeout().AsDuration(),
		LockTimeout:      tx.GetLockTimeout().AsDuration(),
		MaxRetries:       int(tx.MaxRetries),
	}
	if tx.MetricsEnabled != nil {
		v := tx.GetMetricsEnabled()
		cfg.MetricsEnabled = &v
	}
	return cfg
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// replacePort 替换地址中的端口部分，保留 host。
//   - "0.0.0.0:9090" -> "0.0.0.0:8080"
//   - "[::1]:9090" -> "[::1]:8080"
//   - 无法解析时回退为 "0.0.0.0:<port>"
func replacePort(addr, newPort string) string {
	if addr == "" {
		return "0.0.0.0:" + newPort
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return "0.0.0.0:" + newPort
	}
	return net.JoinHostPort(host, newPort)
}
