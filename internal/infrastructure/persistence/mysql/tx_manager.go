package mysql

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/xiebiao/cafe/pkg/tracing"
)

const tracerName = "cafe/mysql"

// txKey context中保存事务DB的键
type txKey struct{}

// TxManager 事务管理器
// 教学要点:
// 1. 事务DB通过context传给仓储,仓储用getDB取出
// 2. ctx里已有事务时加入外层事务(GORM用SAVEPOINT),不会另开连接
// 3. 每个事务一个span,下单时能看到事务耗时
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction fn返回error时ROLLBACK,返回nil时COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    o, err := orderRepo.LockByID(ctx, id) // SELECT ... FOR UPDATE
//	    if err != nil {
//	        return err
//	    }
//	    if err := o.Complete(now); err != nil {
//	        return err
//	    }
//	    return orderRepo.Update(ctx, o)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	_, nested := ctx.Value(txKey{}).(*gorm.DB)

	ctx, span := tracing.StartSpan(ctx, tracerName, "Transaction")
	span.SetAttributes(attribute.Bool("db.tx.nested", nested))
	defer func() { tracing.EndSpan(span, err) }()

	return getDB(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// getDB 从context获取事务DB,没有事务时使用默认DB
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
