package controllers

import (
	"context"
	"time"

	loader "github.com/bionicotaku/lingo-services-greeter/internal/infrastructure/config_loader"
)

// HandlerType 表示 Handler 的语义类别，用于选择超时策略。
type HandlerType int

const (
	// HandlerTypeDefault 表示未显式区分的 Handler。
	HandlerTypeDefault HandlerType = iota
	// HandlerTypeQuery 表示读模型查询 Handler。
	HandlerTypeQuery
)

const (
	fallbackDefaultTimeout = 5 * time.Second
	fallbackQueryTimeout   = 3 * time.Second
)

// BaseHandler 提供公共的超时能力，供具体 Handler 内嵌复用。
type BaseHandler struct {
	timeouts loader.HandlerTimeouts
}

// NewBaseHandler 构造基础 Handler，并为缺省值填充合理的回退策略。
func NewBaseHandler(timeouts loader.HandlerTimeouts) *BaseHandler {
	if timeouts.Default <= 0 {
		if timeouts.Query > 0 {
			timeouts.Default = timeouts.Query
		} else {
			timeouts.Default = fallbackDefaultTimeout
		}
	}
	if timeouts.Query <= 0 {
		timeouts.Query = fallbackQueryTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// Timeouts 返回归一化后的超时配置。
func (h *BaseHandler) Timeouts() loader.HandlerTimeouts {
	if h == nil {
		return loader.HandlerTimeouts{Default: fallbackDefaultTimeout, Query: fallbackQueryTimeout}
	}
	return h.timeouts
}

// WithTimeout 根据 Handler 类型包装上下文，返回绑定超时的新 Context 与取消函数。
func (h *BaseHandler) WithTimeout(ctx context.Context, kind HandlerType) (context.Context, context.CancelFunc) {
	if h == nil {
		return context.WithTimeout(ctx, fallbackDefaultTimeout)
	}
	var timeout time.Duration
	switch kind {
	case HandlerTypeQuery:
		timeout = h.timeouts.Query
	default:
		timeout = h.timeouts.Default
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
