package mysql

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const reconnectDelay = 5 * time.Second

// New opens the store connection. A first failure is logged and, after a
// fixed delay, retried exactly once; the second failure is returned. There is
// no further retry and no backoff.
func New(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := connect(ctx, dsn)
	if err == nil {
		return db, nil
	}

	log.Printf("connect store failed: %v, retrying in %s", err, reconnectDelay)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(reconnectDelay):
	}

	return connect(ctx, dsn)
}

func connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open mysql failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get mysql sql db failed: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping mysql failed: %w", err)
	}

	return db, nil
}
