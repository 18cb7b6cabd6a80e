package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Op is one write applied inside a Commit.
type Op func(tx *gorm.DB) error

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable inserts records, a pointer to a struct or to a slice of
// structs. Rows whose primary key already exists are left untouched.
func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("records type must be a pointer: %T", records)
	}
	if v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
		return nil
	}

	err := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// FindBy loads every row matching conds, sorted by order.
func (f *PostgresDB) FindBy(ctx context.Context, conds map[string]any, order string, entity any) error {
	tx := f.DB.WithContext(ctx).Where(conds).Order(order).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("finding records: %w", tx.Error)
	}
	return nil
}

// NthBy loads the row at zero based position n among the rows matching
// conds, sorted by order.
func (f *PostgresDB) NthBy(ctx context.Context, conds map[string]any, order string, n int, entity any) error {
	err := f.DB.WithContext(ctx).Where(conds).Order(order).Offset(n).Limit(1).Take(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record %d: %w", n, err)
	}
	return nil
}

func (f *PostgresDB) CountBy(ctx context.Context, model any, conds map[string]any) (int64, error) {
	var count int64
	if err := f.DB.WithContext(ctx).Model(model).Where(conds).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// MaxOf returns the largest value of column, or 0 for an empty table.
func (f *PostgresDB) MaxOf(ctx context.Context, model any, column string) (int64, error) {
	var highest int64
	err := f.DB.WithContext(ctx).
		Model(model).
		Select(fmt.Sprintf("COALESCE(MAX(%s), 0)", column)).
		Scan(&highest).Error
	if err != nil {
		return 0, fmt.Errorf("select max %s: %w", column, err)
	}
	return highest, nil
}

// Commit applies ops in a single database transaction.
func (f *PostgresDB) Commit(ctx context.Context, ops ...Op) error {
	err := f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func Insert(record any) Op {
	return func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("insert %T: %w", record, err)
		}
		return nil
	}
}

// Upsert inserts record or, on a conflict over keys, overwrites columns.
func Upsert(record any, keys []string, columns []string) Op {
	conflict := make([]clause.Column, 0, len(keys))
	for _, k := range keys {
		conflict = append(conflict, clause.Column{Name: k})
	}

	return func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   conflict,
			DoUpdates: clause.AssignmentColumns(columns),
		}).Create(record).Error
		if err != nil {
			return fmt.Errorf("upsert %T: %w", record, err)
		}
		return nil
	}
}
