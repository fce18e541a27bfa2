package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "github.com/bionicotaku/lingo-services-greeter/api/greeter/v1"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/bionicotaku/lingo-services-greeter/internal/models/vo"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// DefaultListLimit 是 RecentGreetings 未指定数量时的默认条数。
	DefaultListLimit = 20
	// MaxListLimit 是 RecentGreetings 单次返回的上限。
	MaxListLimit = 100

	greetingsRenderedMetric = "greeter.greetings.rendered"
)

// GreetingLedger 描述问候语账本的持久化行为。
type GreetingLedger interface {
	Insert(ctx context.Context, sess txmanager.Session, entry *po.GreetingLog) (*po.GreetingLog, error)
	ListRecent(ctx context.Context, sess txmanager.Session, limit int) ([]*po.GreetingLog, error)
}

// GreeterUsecase encapsulates greeter business logic.
//
// 渲染本身不会失败；账本写入是尽力而为的，失败仅记录日志。
// txManager 为 nil 表示未配置数据库，账本整体禁用。
type GreeterUsecase struct {
	ledger    GreetingLedger
	txManager txmanager.Manager
	rendered  metric.Int64Counter
	log       *log.Helper
	now       func() time.Time
}

// NewGreeterUsecase constructs a Greeter usecase.
func NewGreeterUsecase(ledger GreetingLedger, tx txmanager.Manager, meter metric.Meter, logger log.Logger) (*GreeterUsecase, error) {
	rendered, err := meter.Int64Counter(
		greetingsRenderedMetric,
		metric.WithDescription("Number of greetings rendered, by kind."),
		metric.WithUnit("{greeting}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", greetingsRenderedMetric, err)
	}
	return &GreeterUsecase{
		ledger:    ledger,
		txManager: tx,
		rendered:  rendered,
		log:       log.NewHelper(logger),
		now:       time.Now,
	}, nil
}

// SimpleGreeting returns the fixed greeting.
func (uc *GreeterUsecase) SimpleGreeting(ctx context.Context) (*vo.Greeting, error) {
	return uc.record(ctx, vo.GreetingKindSimple, "", vo.SimpleFunction()), nil
}

// GreetUser renders the greeting for a named user. Any name is accepted verbatim.
func (uc *GreeterUsecase) GreetUser(ctx context.Context, name string) (*vo.Greeting, error) {
	user := vo.NewUser(name)
	return uc.record(ctx, vo.GreetingKindUser, user.Name(), user.Greet()), nil
}

// RecentGreetings 返回最近渲染的问候语（新的在前）。
// limit <= 0 使用 DefaultListLimit，超过 MaxListLimit 时截断。
func (uc *GreeterUsecase) RecentGreetings(ctx context.Context, limit int) ([]*vo.Greeting, error) {
	limit = clampLimit(limit)
	if uc.txManager == nil {
		return []*vo.Greeting{}, nil
	}

	var entries []*po.GreetingLog
	err := uc.txManager.WithinReadOnlyTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		var repoErr error
		entries, repoErr = uc.ledger.ListRecent(txCtx, sess, limit)
		return repoErr
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			uc.log.WithContext(ctx).Warnf("list greetings timeout: limit=%d", limit)
			return nil, v1.ErrorQueryTimeout("query timeout")
		}
		uc.log.WithContext(ctx).Errorf("list greetings failed: limit=%d err=%v", limit, err)
		return nil, v1.ErrorLedgerQueryFailed("failed to query greetings").WithCause(fmt.Errorf("list recent greetings: %w", err))
	}

	out := make([]*vo.Greeting, 0, len(entries))
	for _, entry := range entries {
		out = append(out, vo.NewGreetingFromLog(entry))
	}
	return out, nil
}

func (uc *GreeterUsecase) record(ctx context.Context, kind vo.GreetingKind, name, message string) *vo.Greeting {
	greeting := &vo.Greeting{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      name,
		Message:   message,
		CreatedAt: uc.now().UTC(),
	}
	uc.rendered.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))

	if uc.txManager == nil {
		return greeting
	}
	err := uc.txManager.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		saved, err := uc.ledger.Insert(txCtx, sess, &po.GreetingLog{
			ID:      greeting.ID,
			Kind:    string(kind),
			Name:    name,
			Message: message,
		})
		if err != nil {
			return err
		}
		greeting.CreatedAt = saved.CreatedAt
		return nil
	})
	if err != nil {
		uc.log.WithContext(ctx).Warnf("record greeting failed: id=%s kind=%s err=%v", greeting.ID, kind, err)
	}
	return greeting
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
