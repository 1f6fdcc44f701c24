package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type GormDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

// NewSQLiteDB opens an SQLite database. Used by the end-to-end suite with an
// in-memory DSN.
func NewSQLiteDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SeedTable inserts records only when the target table is still empty.
func (f *GormDB) SeedTable(ctx context.Context, records any) error {

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	var count int64

	elemType := slice.Index(0).Interface()
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) CreateRecord(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetPage(ctx context.Context, column string, value any, order string, offset, limit int, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Where(query, value).Order(order).Offset(offset).Limit(limit).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *GormDB) CountBy(ctx context.Context, model any, column string, value any) (int64, error) {
	var count int64
	query := fmt.Sprintf("%s = ?", column)
	if err := f.DB.WithContext(ctx).Model(model).Where(query, value).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting records by %q: %w", column, err)
	}
	return count, nil
}

func (f *GormDB) UpdateRecord(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

// DeleteRecord deletes by the record's primary key and reports how many rows
// went away, so callers can distinguish a miss from a successful delete.
func (f *GormDB) DeleteRecord(ctx context.Context, record any) (int64, error) {
	tx := f.DB.WithContext(ctx).Delete(record)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete record: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
