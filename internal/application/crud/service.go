package crud

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/inventory/internal/domain/crud"
	"github.com/xiebiao/inventory/pkg/tracing"
)

const tracerName = "inventory/application/crud"

// Options 通用服务配置
type Options[E any, P any] struct {
	// Name 资源名称，用作span前缀，如"product"
	Name string
	// NotFound 资源不存在时返回的错误
	NotFound error
	// ValidateEntity 创建前的业务校验，可为空
	ValidateEntity func(*E) error
	// ValidatePatch 更新前的业务校验，可为空
	ValidatePatch   func(*P) error
	DefaultPageSize int
	MaxPageSize     int
}

// Service 通用增删改查服务
// 1. 写操作前执行领域校验，校验失败不访问数据库
// 2. 仓储返回nil时转换为NotFound错误
// 3. 分页参数补全默认值
type Service[E any, P any] struct {
	repo crud.Repository[E, P]
	opts Options[E, P]
}

// NewService 创建通用服务
func NewService[E any, P any](repo crud.Repository[E, P], opts Options[E, P]) *Service[E, P] {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 20
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}
	return &Service[E, P]{repo: repo, opts: opts}
}

// List 分页查询，同时返回总数
func (s *Service[E, P]) List(ctx context.Context, paging crud.Paging) (*crud.PageResult[E], error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, s.opts.Name+".List")
	defer span.End()

	paging = paging.Normalize(s.opts.DefaultPageSize, s.opts.MaxPageSize)
	span.SetAttributes(attribute.Int("page", paging.Page), attribute.Int("page_size", paging.PageSize))

	items, err := s.repo.List(ctx, paging.Page, paging.PageSize)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	return &crud.PageResult[E]{
		Items:    items,
		Total:    total,
		Page:     paging.Page,
		PageSize: paging.PageSize,
	}, nil
}

func (s *Service[E, P]) Count(ctx context.Context) (int64, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, s.opts.Name+".Count")
	defer span.End()

	total, err := s.repo.Count(ctx)
	tracing.RecordError(span, err)
	return total, err
}

func (s *Service[E, P]) Get(ctx context.Context, id uint) (*E, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, s.opts.Name+".Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", int64(id)))

	e, err := s.repo.FindByID(ctx, id)
	return s.found(span, e, err)
}

func (s *Service[E, P]) Create(ctx context.Context, e *E) (*E, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, s.opts.Name+".Create")
	defer span.End()

	if err := s.validateEntity(e); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return created, nil
}

// Update 部分更新
func (s *Service[E, P]) Update(ctx context.Context, id uint, patch *P) (*E, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, s.opts.Name+".Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", int64(id)))

	if s.opts.ValidatePatch != nil {
		if err := s.opts.ValidatePatch(patch); err != nil {
			return nil, err
		}
	}

	e, err := s.repo.Update(ctx, id, patch)
	return s.found(span, e, err)
}

func (s *Service[E, P]) Delete(ctx context.Context, id uint) (*E, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, s.opts.Name+".Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", int64(id)))

	e, err := s.repo.Delete(ctx, id)
	return s.found(span, e, err)
}

// BatchCreate 批量创建，任意一条校验失败则全部不创建
func (s *Service[E, P]) BatchCreate(ctx context.Context, entities []*E) ([]*E, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, s.opts.Name+".BatchCreate")
	defer span.End()
	span.SetAttributes(attribute.Int("count", len(entities)))

	for _, e := range entities {
		if err := s.validateEntity(e); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.BatchCreate(ctx, entities)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return created, nil
}

// BatchDelete 返回实际删除的ID
func (s *Service[E, P]) BatchDelete(ctx context.Context, ids []uint) ([]uint, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, s.opts.Name+".BatchDelete")
	defer span.End()
	span.SetAttributes(attribute.Int("count", len(ids)))

	deleted, err := s.repo.BatchDelete(ctx, ids)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return deleted, nil
}

func (s *Service[E, P]) validateEntity(e *E) error {
	if s.opts.ValidateEntity == nil {
		return nil
	}
	return s.opts.ValidateEntity(e)
}

// found 仓储返回nil时转换为NotFound
func (s *Service[E, P]) found(span trace.Span, e *E, err error) (*E, error) {
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if e == nil {
		return nil, s.opts.NotFound
	}
	return e, nil
}
