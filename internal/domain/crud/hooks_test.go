package crud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAfterCommit(t *testing.T) {
	t.Run("没有请求事务时立即执行", func(t *testing.T) {
		ran := false
		AfterCommit(context.Background(), func() { ran = true })
		assert.True(t, ran)
	})

	t.Run("提交后按顺序执行", func(t *testing.T) {
		ctx, hooks := WithCommitHooks(context.Background())
		var order []int
		AfterCommit(ctx, func() { order = append(order, 1) })
		AfterCommit(ctx, func() { order = append(order, 2) })
		assert.Empty(t, order)

		hooks.Run()
		assert.Equal(t, []int{1, 2}, order)

		hooks.Run()
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("回滚后丢弃", func(t *testing.T) {
		ctx, hooks := WithCommitHooks(context.Background())
		ran := false
		AfterCommit(ctx, func() { ran = true })

		hooks.Discard()
		hooks.Run()
		assert.False(t, ran)
	})
}
