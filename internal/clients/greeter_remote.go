// Package clients 包含调用外部服务的客户端门面（Façade），封装 gRPC 调用细节。
// 提供业务级别的调用抽象，供 greeterctl 等调用方使用。
package clients

import (
	"context"
	"errors"
	"fmt"

	v1 "github.com/bionicotaku/lingo-services-greeter/api/greeter/v1"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/vo"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ErrRemoteDisabled 表示未配置远程连接。
var ErrRemoteDisabled = errors.New("greeter remote disabled")

// GreeterRemote 封装远程 Greeter 服务调用。
type GreeterRemote struct {
	client v1.GreeterClient // gRPC 客户端桩
	log    *log.Helper
}

// NewGreeterRemote 构造 GreeterRemote，封装共享的 gRPC 连接。
// conn 为 nil（未配置远程服务）时返回禁用状态的实现，所有调用返回 ErrRemoteDisabled。
func NewGreeterRemote(conn grpc.ClientConnInterface, logger log.Logger) *GreeterRemote {
	helper := log.NewHelper(logger)
	if cc, ok := conn.(*grpc.ClientConn); conn == nil || (ok && cc == nil) {
		helper.Warn("no grpc client connection; greeter remote disabled")
		return &GreeterRemote{log: helper}
	}
	return &GreeterRemote{
		client: v1.NewGreeterClient(conn),
		log:    helper,
	}
}

// Enabled 报告是否持有可用的远程连接。
func (r *GreeterRemote) Enabled() bool {
	return r != nil && r.client != nil
}

// SimpleGreeting 调用远程 SimpleGreeting RPC。
func (r *GreeterRemote) SimpleGreeting(ctx context.Context) (string, error) {
	if !r.Enabled() {
		return "", ErrRemoteDisabled
	}
	reply, err := r.client.SimpleGreeting(ctx, &emptypb.Empty{})
	if err != nil {
		return "", err
	}
	return reply.GetValue(), nil
}

// GreetUser 调用远程 GreetUser RPC，名字原样发送。
func (r *GreeterRemote) GreetUser(ctx context.Context, name string) (string, error) {
	if !r.Enabled() {
		return "", ErrRemoteDisabled
	}
	reply, err := r.client.GreetUser(ctx, wrapperspb.String(name))
	if err != nil {
		return "", err
	}
	return reply.GetValue(), nil
}

// ListGreetings 调用远程 ListGreetings RPC，并将结果还原为视图对象。
// 任一条目的 id 不是合法 UUID 时整体返回错误。
func (r *GreeterRemote) ListGreetings(ctx context.Context, limit uint32) ([]*vo.Greeting, error) {
	if !r.Enabled() {
		return nil, ErrRemoteDisabled
	}
	reply, err := r.client.ListGreetings(ctx, &v1.ListGreetingsRequest{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]*vo.Greeting, 0, len(reply.GetGreetings()))
	for i, g := range reply.GetGreetings() {
		id, err := uuid.Parse(g.GetId())
		if err != nil {
			r.log.WithContext(ctx).Warnf("malformed greeting id at %d: %q", i, g.GetId())
			return nil, fmt.Errorf("greeting %d: parse id %q: %w", i, g.GetId(), err)
		}
		out = append(out, &vo.Greeting{
			ID:        id,
			Kind:      vo.GreetingKind(g.GetKind()),
			Name:      g.GetName(),
			Message:   g.GetMessage(),
			CreatedAt: g.GetCreatedAt().AsTime(),
		})
	}
	return out, nil
}
