package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "", CoalesceStr("", ""))
	assert.Equal(t, "", CoalesceStr())
}

func TestValueOr(t *testing.T) {
	zero := 0.0
	two := 2.0
	assert.Equal(t, math.Inf(1), ValueOr(math.Inf(1)))
	assert.Equal(t, math.Inf(1), ValueOr(math.Inf(1), nil))
	assert.Equal(t, 0.0, ValueOr(5.0, &zero), "explicit zero wins over fallback")
	assert.Equal(t, 2.0, ValueOr(5.0, nil, &two, &zero))

	off := false
	assert.False(t, ValueOr(true, &off))
	assert.True(t, ValueOr(true, (*bool)(nil)))
}
