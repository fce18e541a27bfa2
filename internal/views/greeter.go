// Package views 提供视图对象（VO）与 API DTO（Proto 消息 / JSON 响应）之间的转换辅助函数。
// 负责将 Service 层返回的 VO 渲染为响应，保持 Controller 层的精简。
package views

import (
	"time"

	v1 "github.com/bionicotaku/lingo-services-greeter/api/greeter/v1"
	"github.com/bionicotaku/lingo-services-greeter/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/vo"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// NewGreetingReply 将 Greeting 视图对象转换为 gRPC 响应消息。
// 处理 nil 情况，返回空字符串消息以避免 panic。
func NewGreetingReply(greeting *vo.Greeting) *wrapperspb.StringValue {
	if greeting == nil {
		return wrapperspb.String("")
	}
	return wrapperspb.String(greeting.Message)
}

// NewGreetingList 将账本记录渲染为 ListGreetingsResponse。
func NewGreetingList(greetings []*vo.Greeting) *v1.ListGreetingsResponse {
	items := make([]*v1.Greeting, 0, len(greetings))
	for _, g := range greetings {
		if g == nil {
			continue
		}
		items = append(items, &v1.Greeting{
			Id:        g.ID.String(),
			Kind:      string(g.Kind),
			Name:      g.Name,
			Message:   g.Message,
			CreatedAt: timestamppb.New(g.CreatedAt),
		})
	}
	return &v1.ListGreetingsResponse{Greetings: items}
}

// NewGreetingResponse 渲染 HTTP JSON 响应。
func NewGreetingResponse(reply *wrapperspb.StringValue) *dto.GreetingResponse {
	return &dto.GreetingResponse{Message: reply.GetValue()}
}

// NewGreetingListResponse 将 ListGreetingsResponse 渲染为 HTTP JSON 响应，时间统一为 UTC RFC3339Nano。
func NewGreetingListResponse(list *v1.ListGreetingsResponse) *dto.GreetingListResponse {
	resp := &dto.GreetingListResponse{Greetings: make([]dto.GreetingItem, 0, len(list.GetGreetings()))}
	for _, g := range list.GetGreetings() {
		resp.Greetings = append(resp.Greetings, dto.GreetingItem{
			ID:        g.GetId(),
			Kind:      g.GetKind(),
			Name:      g.GetName(),
			Message:   g.GetMessage(),
			CreatedAt: g.GetCreatedAt().AsTime().UTC().Format(time.RFC3339Nano),
		})
	}
	return resp
}
