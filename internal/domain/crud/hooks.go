package crud

import (
	"context"
	"sync"
)

type hooksKey struct{}

// CommitHooks 请求事务提交后要执行的回调
type CommitHooks struct {
	mu  sync.Mutex
	fns []func()
}

// WithCommitHooks 在ctx中登记一组提交回调，由开启事务的一方在提交成功后调用Run
func WithCommitHooks(ctx context.Context) (context.Context, *CommitHooks) {
	h := &CommitHooks{}
	return context.WithValue(ctx, hooksKey{}, h), h
}

// AfterCommit 登记提交后执行的fn
// ctx中没有请求事务时（如后台任务）立即执行
func AfterCommit(ctx context.Context, fn func()) {
	h, ok := ctx.Value(hooksKey{}).(*CommitHooks)
	if !ok {
		fn()
		return
	}
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

// Run 按登记顺序执行全部回调，只执行一次
func (h *CommitHooks) Run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Discard 回滚时丢弃已登记的回调
func (h *CommitHooks) Discard() {
	h.mu.Lock()
	h.fns = nil
	h.mu.Unlock()
}
