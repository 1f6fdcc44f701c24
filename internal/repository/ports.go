package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SeedTable(ctx context.Context, records any) error
	CreateRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, dest any) error
	GetPage(ctx context.Context, column string, value any, order string, offset, limit int, dest any) error
	CountBy(ctx context.Context, model any, column string, value any) (int64, error)
	UpdateRecord(ctx context.Context, record any) error
	DeleteRecord(ctx context.Context, record any) (int64, error)
}
