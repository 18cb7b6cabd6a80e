package repository

import (
	"context"

	"financeguard/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindBy(ctx context.Context, conds map[string]any, order string, entity any) error
	NthBy(ctx context.Context, conds map[string]any, order string, n int, entity any) error
	CountBy(ctx context.Context, model any, conds map[string]any) (int64, error)
	MaxOf(ctx context.Context, model any, column string) (int64, error)
	Commit(ctx context.Context, ops ...db.Op) error
}
