// Package po defines persistence-oriented data objects shared by repositories.
package po

import (
	"time"

	"github.com/google/uuid"
)

// GreetingLog 对应 greeter.greeting_log 表中的一行记录。
type GreetingLog struct {
	ID        uuid.UUID
	Kind      string
	Name      string
	Message   string
	CreatedAt time.Time
}
