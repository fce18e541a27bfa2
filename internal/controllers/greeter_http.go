package controllers

import (
	"context"
	stdhttp "net/http"

	v1 "github.com/bionicotaku/lingo-services-greeter/api/greeter/v1"
	"github.com/bionicotaku/lingo-services-greeter/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-greeter/internal/views"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// RegisterGreeterHTTPServer 在 Kratos HTTP Server 上注册 Greeter 的 JSON 路由。
// 请求同样经过 Server 配置的中间件链，与 gRPC 共用 Operation 名称。
func RegisterGreeterHTTPServer(s *khttp.Server, h *GreeterHandler) {
	r := s.Route("/")
	r.GET("/v1/greeting", h.httpSimpleGreeting)
	r.GET("/v1/users/{name}/greeting", h.httpGreetUser)
	r.GET("/v1/user-greeting", h.httpGreetUserQuery)
	r.GET("/v1/greetings", h.httpListGreetings)
}

func (h *GreeterHandler) httpSimpleGreeting(ctx khttp.Context) error {
	khttp.SetOperation(ctx, v1.Greeter_SimpleGreeting_FullMethodName)
	handler := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return h.SimpleGreeting(c, req.(*emptypb.Empty))
	})
	out, err := handler(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	return ctx.Result(stdhttp.StatusOK, views.NewGreetingResponse(out.(*wrapperspb.StringValue)))
}

func (h *GreeterHandler) httpGreetUser(ctx khttp.Context) error {
	return h.greetUserHTTP(ctx, ctx.Vars().Get("name"))
}

// httpGreetUserQuery 从 ?name= 读取名字，可承载空串以及含 "/" 的名字；缺省视为空串。
func (h *GreeterHandler) httpGreetUserQuery(ctx khttp.Context) error {
	return h.greetUserHTTP(ctx, ctx.Query().Get("name"))
}

func (h *GreeterHandler) greetUserHTTP(ctx khttp.Context, name string) error {
	khttp.SetOperation(ctx, v1.Greeter_GreetUser_FullMethodName)
	handler := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return h.GreetUser(c, req.(*wrapperspb.StringValue))
	})
	out, err := handler(ctx, wrapperspb.String(name))
	if err != nil {
		return err
	}
	return ctx.Result(stdhttp.StatusOK, views.NewGreetingResponse(out.(*wrapperspb.StringValue)))
}

func (h *GreeterHandler) httpListGreetings(ctx khttp.Context) error {
	khttp.SetOperation(ctx, v1.Greeter_ListGreetings_FullMethodName)
	limit, err := dto.ParseLimit(ctx.Query().Get("limit"))
	if err != nil {
		return v1.ErrorInvalidArgument("%s", err.Error())
	}
	handler := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return h.ListGreetings(c, req.(*v1.ListGreetingsRequest))
	})
	out, err := handler(ctx, &v1.ListGreetingsRequest{Limit: limit})
	if err != nil {
		return err
	}
	return ctx.Result(stdhttp.StatusOK, views.NewGreetingListResponse(out.(*v1.ListGreetingsResponse)))
}
