package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conn is the handle a repository issues statements on.
// Handles created inside a transaction lock the rows their reads return.
type conn struct {
	db   *gorm.DB
	lock bool
}

func (c conn) read(ctx context.Context) *gorm.DB {
	q := c.db.WithContext(ctx)
	if c.lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return q
}

// write also serves aggregate reads; FOR UPDATE is not allowed together with COUNT.
func (c conn) write(ctx context.Context) *gorm.DB {
	return c.db.WithContext(ctx)
}
