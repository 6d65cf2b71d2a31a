package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appErr "github.com/hotel-booking/engine/pkg/errors"
	"github.com/hotel-booking/engine/pkg/pagination"
)

// postgres SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
)

// BaseRepository defines common CRUD operations.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
	Update(ctx context.Context, obj *T) error
	Delete(ctx context.Context, id any) error
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(obj).Error; err != nil {
		return translate(err, "create")
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		return translate(err, "get")
	}
	return nil
}

// Update writes every column of obj; relations are left untouched.
func (r *baseRepository[T]) Update(ctx context.Context, obj *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(obj).Error; err != nil {
		return translate(err, "update")
	}
	return nil
}

func (r *baseRepository[T]) Delete(ctx context.Context, id any) error {
	var t T
	res := r.db.WithContext(ctx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "delete")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, appErr.MsgEntityNotFound).WithMeta("id", fmt.Sprint(id))
	}
	return nil
}

// translate maps gorm and postgres failures onto application error codes.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appErr.New(appErr.CodeNotFound, appErr.MsgEntityNotFound)
	}
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return appErr.Wrap(err, appErr.CodeConflict, appErr.MsgEntityConflict).WithMeta("constraint", pgErr.ConstraintName)
		case pgForeignKeyViolation:
			if op == "delete" {
				return appErr.Wrap(err, appErr.CodeConflict, appErr.MsgForeignKeyFail).WithMeta("constraint", pgErr.ConstraintName)
			}
			return appErr.Wrap(err, appErr.CodeConflict, appErr.MsgForeignKeyNotFound).WithMeta("constraint", pgErr.ConstraintName)
		case pgCheckViolation, pgInvalidText:
			return appErr.Wrap(err, appErr.CodeInvalid, pgErr.Message)
		}
	}
	return appErr.Wrap(err, appErr.CodeInternal, op+" entity failed")
}

type scope = func(*gorm.DB) *gorm.DB

// listPage runs a filtered, sorted and windowed query for T, counting the
// full filtered set when requested.
func listPage[T any](ctx context.Context, db *gorm.DB, p pagination.Params, cols pagination.Columns, filters []scope, loads ...scope) ([]T, *int64, error) {
	column, err := cols.ResolveSort(p.Sort)
	if err != nil {
		return nil, nil, err
	}

	var out []T
	q := db.WithContext(ctx).Model(new(T)).Scopes(filters...).Scopes(loads...)
	if err := q.Scopes(pagination.OrderBy(column, p.Order), pagination.Window(p)).Find(&out).Error; err != nil {
		return nil, nil, translate(err, "list")
	}

	if !p.Count {
		return out, nil, nil
	}
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(filters...).Count(&total).Error; err != nil {
		return nil, nil, translate(err, "count")
	}
	return out, &total, nil
}

func containsFold(column, value string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE LOWER(?)", "%"+value+"%")
	}
}

func equals(column string, value any) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}
