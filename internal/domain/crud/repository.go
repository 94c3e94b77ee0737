package crud

import (
	"context"
)

// Repository 通用仓储接口
// E是领域实体，P是部分更新用的补丁类型（字段均为指针，nil表示不修改）
//
// 约定：
// 1. 查不到数据返回(nil, nil)，不是错误，由HTTP层转换为404
// 2. 所有方法通过ctx参与当前请求的事务
// 3. 唯一约束、外键约束冲突返回apperrors.ErrDuplicateEntry / ErrReferenced
type Repository[E any, P any] interface {
	// List 分页查询，page从1开始，按主键升序
	List(ctx context.Context, page, pageSize int) ([]*E, error)

	// Count 总记录数
	Count(ctx context.Context) (int64, error)

	// FindByID 根据ID查询
	FindByID(ctx context.Context, id uint) (*E, error)

	// Create 创建并返回落库后的实体（包含ID、created_at等服务端字段）
	Create(ctx context.Context, entity *E) (*E, error)

	// Update 只更新patch中非nil的字段，ID不可修改
	Update(ctx context.Context, id uint, patch *P) (*E, error)

	// Delete 删除并返回被删除的实体
	Delete(ctx context.Context, id uint) (*E, error)

	// BatchCreate 批量创建，全部成功或全部失败
	BatchCreate(ctx context.Context, entities []*E) ([]*E, error)

	// BatchDelete 批量删除，返回实际删除的ID
	BatchDelete(ctx context.Context, ids []uint) ([]uint, error)
}
