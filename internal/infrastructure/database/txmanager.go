package database

import (
	"fmt"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewTxManager 基于连接池构造事务管理器；连接池为 nil（账本禁用）时返回 nil。
func NewTxManager(pool *pgxpool.Pool, cfg txmanager.Config, logger log.Logger) (txmanager.Manager, error) {
	if pool == nil {
		return nil, nil
	}
	mgr, err := txmanager.NewManager(pool, cfg, txmanager.Dependencies{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("init tx manager: %w", err)
	}
	return mgr, nil
}
