// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
package controllers

import (
	"context"

	v1 "github.com/bionicotaku/lingo-services-greeter/api/greeter/v1"
	loader "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"
	"github.com/bionicotaku/lingo-services-greeter/internal/views"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// GreeterHandler 是 Greeter 服务的传输层处理器。
// 负责将 Proto 请求转换为业务层调用，并将结果渲染为 Proto 响应。
type GreeterHandler struct {
	v1.UnimplementedGreeterServer

	*BaseHandler
	uc *services.GreeterUsecase
}

// NewGreeterHandler 构造一个由 GreeterUsecase 支撑的 Handler。
func NewGreeterHandler(uc *services.GreeterUsecase, base *BaseHandler) *GreeterHandler {
	if base == nil {
		base = NewBaseHandler(loader.HandlerTimeouts{})
	}
	return &GreeterHandler{BaseHandler: base, uc: uc}
}

// SimpleGreeting 实现 Greeter.SimpleGreeting RPC。
func (h *GreeterHandler) SimpleGreeting(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	ctx, cancel := h.WithTimeout(ctx, HandlerTypeDefault)
	defer cancel()

	greeting, err := h.uc.SimpleGreeting(ctx)
	if err != nil {
		return nil, err
	}
	return views.NewGreetingReply(greeting), nil
}

// GreetUser 实现 Greeter.GreetUser RPC，名字原样透传，不做任何校验或转义。
func (h *GreeterHandler) GreetUser(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	ctx, cancel := h.WithTimeout(ctx, HandlerTypeDefault)
	defer cancel()

	greeting, err := h.uc.GreetUser(ctx, in.GetValue())
	if err != nil {
		return nil, err
	}
	return views.NewGreetingReply(greeting), nil
}

// ListGreetings 实现 Greeter.ListGreetings RPC，0 表示默认条数。
func (h *GreeterHandler) ListGreetings(ctx context.Context, in *v1.ListGreetingsRequest) (*v1.ListGreetingsResponse, error) {
	ctx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	greetings, err := h.uc.RecentGreetings(ctx, int(in.GetLimit()))
	if err != nil {
		return nil, err
	}
	return views.NewGreetingList(greetings), nil
}
