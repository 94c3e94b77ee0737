package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	out, err := json.Marshal(map[string]json.Number{
		"a": Money(decimal.RequireFromString("1000")),
		"b": Money(decimal.RequireFromString("19.999")),
		"c": Money(decimal.Zero),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1000.00,"b":20.00,"c":0.00}`, string(out))
	assert.Contains(t, string(out), `"a":1000.00`)
}

func TestCreateProductRequest(t *testing.T) {
	t.Run("金额支持数字与字符串", func(t *testing.T) {
		var req CreateProductRequest
		require.NoError(t, json.Unmarshal([]byte(`{"product_name":"Widget","price":"19.99","cost":10}`), &req))

		p := req.ToEntity()
		assert.Equal(t, "Widget", *p.ProductName)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("19.99")))
		assert.True(t, p.Cost.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("名称可以为空", func(t *testing.T) {
		var req CreateProductRequest
		require.NoError(t, json.Unmarshal([]byte(`{"price":1,"cost":1,"stock":3}`), &req))

		p := req.ToEntity()
		assert.Nil(t, p.ProductName)
		assert.Equal(t, 3, p.Stock)
	})
}

func TestUpdateProductRequest_ToPatch(t *testing.T) {
	var req UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"stock":5}`), &req))

	patch := req.ToPatch()
	require.NotNil(t, patch.Stock)
	assert.Equal(t, 5, *patch.Stock)
	assert.Nil(t, patch.Price)
	assert.Nil(t, patch.ProductName)
}
