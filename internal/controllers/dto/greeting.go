// Package dto 定义 HTTP 传输层的 JSON 响应结构与请求参数解析。
package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// GreetingResponse 是单条问候语的 JSON 响应。
type GreetingResponse struct {
	Message string `json:"message"`
}

// GreetingItem 是账本列表中的一项。
type GreetingItem struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// GreetingListResponse 是 GET /v1/greetings 的 JSON 响应。
type GreetingListResponse struct {
	Greetings []GreetingItem `json:"greetings"`
}

// ParseLimit 解析 limit 查询参数，空串表示使用默认值（返回 0）。
func ParseLimit(raw string) (uint32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return uint32(n), nil
}
