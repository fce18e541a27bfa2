// Package repositories 提供数据访问层实现，负责与持久化存储交互。
// 该层实现 Service 层定义的 Repository 接口，隔离底层存储细节。
package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrLedgerUnavailable 表示未配置数据库，账本不可用。
var ErrLedgerUnavailable = errors.New("greeting ledger unavailable")

const (
	insertGreetingSQL = `
INSERT INTO greeter.greeting_log (id, kind, name, message)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	listRecentGreetingsSQL = `
SELECT id, kind, name, message, created_at
FROM greeter.greeting_log
ORDER BY created_at DESC, id DESC
LIMIT $1`
)

// querier 是 pgxpool.Pool 与 pgx.Tx 的公共子集。
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GreetingRepository 维护 greeter.greeting_log 问候语账本。
type GreetingRepository struct {
	db  *pgxpool.Pool
	log *log.Helper
}

// NewGreetingRepository 构造仓储；db 可为 nil（此时所有无事务调用返回 ErrLedgerUnavailable）。
func NewGreetingRepository(db *pgxpool.Pool, logger log.Logger) *GreetingRepository {
	return &GreetingRepository{
		db:  db,
		log: log.NewHelper(logger),
	}
}

// Insert 写入一条问候语记录，回填数据库生成的 created_at。
func (r *GreetingRepository) Insert(ctx context.Context, sess txmanager.Session, entry *po.GreetingLog) (*po.GreetingLog, error) {
	q, err := r.querier(sess)
	if err != nil {
		return nil, err
	}
	saved := *entry
	if err := q.QueryRow(ctx, insertGreetingSQL, entry.ID, entry.Kind, entry.Name, entry.Message).Scan(&saved.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert greeting log: %w", err)
	}
	r.log.WithContext(ctx).Debugf("greeting log inserted: id=%s kind=%s", saved.ID, saved.Kind)
	return &saved, nil
}

// ListRecent 按创建时间倒序返回最近 limit 条记录。
func (r *GreetingRepository) ListRecent(ctx context.Context, sess txmanager.Session, limit int) ([]*po.GreetingLog, error) {
	q, err := r.querier(sess)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, listRecentGreetingsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list greeting logs: %w", err)
	}
	defer rows.Close()

	var out []*po.GreetingLog
	for rows.Next() {
		var entry po.GreetingLog
		if err := rows.Scan(&entry.ID, &entry.Kind, &entry.Name, &entry.Message, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan greeting log: %w", err)
		}
		out = append(out, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate greeting logs: %w", err)
	}
	return out, nil
}

func (r *GreetingRepository) querier(sess txmanager.Session) (querier, error) {
	if sess != nil {
		return sess.Tx(), nil
	}
	if r.db == nil {
		return nil, ErrLedgerUnavailable
	}
	return r.db, nil
}
