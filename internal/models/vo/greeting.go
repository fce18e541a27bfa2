// Package vo 定义视图对象（View Objects），用于向上层传递业务数据。
// VO 对象由 Service 层返回，经 Views 层转换为 API 响应，隔离内部数据结构。
package vo

import (
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/google/uuid"
)

// GreetingKind 区分问候语的来源。
type GreetingKind string

const (
	// GreetingKindSimple 表示固定问候语（SimpleFunction）。
	GreetingKindSimple GreetingKind = "simple"
	// GreetingKindUser 表示针对具名用户渲染的问候语。
	GreetingKindUser GreetingKind = "user"
)

// Greeting encapsulates the message returned to API consumers.
type Greeting struct {
	ID        uuid.UUID    `json:"id"`
	Kind      GreetingKind `json:"kind"`
	Name      string       `json:"name,omitempty"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewGreetingFromLog 从账本记录构造 VO。
func NewGreetingFromLog(entry *po.GreetingLog) *Greeting {
	if entry == nil {
		return nil
	}
	return &Greeting{
		ID:        entry.ID,
		Kind:      GreetingKind(entry.Kind),
		Name:      entry.Name,
		Message:   entry.Message,
		CreatedAt: entry.CreatedAt,
	}
}
