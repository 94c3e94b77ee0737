package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/inventory/internal/domain/crud"
)

// crudRepository 通用仓储实现
// M是GORM模型，E是领域实体，P是补丁类型
// 各实体只需提供模型与实体之间的转换函数
type crudRepository[M any, E any, P any] struct {
	db       *gorm.DB
	name     string // 资源名称，用于错误信息
	toEntity func(*M) *E
	toModel  func(*E) *M
	columns  func(*P) map[string]interface{}
}

// List 按主键升序分页
func (r *crudRepository[M, E, P]) List(ctx context.Context, page, pageSize int) ([]*E, error) {
	var models []*M
	offset := crud.Paging{Page: page, PageSize: pageSize}.Offset()
	err := getDB(ctx, r.db).Order("id").Offset(offset).Limit(pageSize).Find(&models).Error
	if err != nil {
		return nil, translateError(err, "查询"+r.name+"列表失败")
	}

	entities := make([]*E, 0, len(models))
	for _, m := range models {
		entities = append(entities, r.toEntity(m))
	}
	return entities, nil
}

func (r *crudRepository[M, E, P]) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := getDB(ctx, r.db).Model(new(M)).Count(&total).Error; err != nil {
		return 0, translateError(err, "统计"+r.name+"数量失败")
	}
	return total, nil
}

// FindByID 不存在时返回(nil, nil)
func (r *crudRepository[M, E, P]) FindByID(ctx context.Context, id uint) (*E, error) {
	m := new(M)
	err := getDB(ctx, r.db).First(m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err, "查询"+r.name+"失败")
	}
	return r.toEntity(m), nil
}

// Create 插入一行，ID与created_at由数据库/GORM生成
func (r *crudRepository[M, E, P]) Create(ctx context.Context, entity *E) (*E, error) {
	m := r.toModel(entity)
	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, translateError(err, "创建"+r.name+"失败")
	}
	return r.toEntity(m), nil
}

// Update 只更新补丁中出现的列，返回更新后的实体
func (r *crudRepository[M, E, P]) Update(ctx context.Context, id uint, patch *P) (*E, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return existing, err
	}

	cols := r.columns(patch)
	if len(cols) == 0 {
		return existing, nil
	}

	err = getDB(ctx, r.db).Model(new(M)).Where("id = ?", id).Updates(cols).Error
	if err != nil {
		return nil, translateError(err, "更新"+r.name+"失败")
	}
	return r.FindByID(ctx, id)
}

// Delete 删除并返回删除前的实体
// 仍被引用时返回ErrReferenced
func (r *crudRepository[M, E, P]) Delete(ctx context.Context, id uint) (*E, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return existing, err
	}

	if err := getDB(ctx, r.db).Delete(new(M), id).Error; err != nil {
		return nil, translateError(err, "删除"+r.name+"失败")
	}
	return existing, nil
}

// BatchCreate 一条INSERT插入全部行
func (r *crudRepository[M, E, P]) BatchCreate(ctx context.Context, entities []*E) ([]*E, error) {
	if len(entities) == 0 {
		return []*E{}, nil
	}

	models := make([]*M, 0, len(entities))
	for _, e := range entities {
		models = append(models, r.toModel(e))
	}
	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(&models).Error; err != nil {
		return nil, translateError(err, "批量创建"+r.name+"失败")
	}

	created := make([]*E, 0, len(models))
	for _, m := range models {
		created = append(created, r.toEntity(m))
	}
	return created, nil
}

// BatchDelete 删除存在的ID，不存在的ID忽略
// 1. 查出实际存在的ID
// 2. 一次删除，任意一行被引用则整体回滚
func (r *crudRepository[M, E, P]) BatchDelete(ctx context.Context, ids []uint) ([]uint, error) {
	deleted := []uint{}
	if len(ids) == 0 {
		return deleted, nil
	}

	err := getDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(new(M)).Where("id IN ?", ids).Order("id").Pluck("id", &deleted).Error; err != nil {
			return err
		}
		if len(deleted) == 0 {
			return nil
		}
		return tx.Where("id IN ?", deleted).Delete(new(M)).Error
	})
	if err != nil {
		return nil, translateError(err, "批量删除"+r.name+"失败")
	}
	return deleted, nil
}
