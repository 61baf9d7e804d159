package point_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkrylov/bsgs/point"
)

func TestConvention_Base0(t *testing.T) {
	p, err := point.Base0.ToInternal(3)
	assert.NoError(t, err)
	assert.Equal(t, point.Point(3), p)
	assert.Equal(t, 3, point.Base0.FromInternal(p))
}

func TestConvention_Base1(t *testing.T) {
	p, err := point.Base1.ToInternal(1)
	assert.NoError(t, err)
	assert.Equal(t, point.Point(0), p)
	assert.Equal(t, 1, point.Base1.FromInternal(p))
}

func TestConvention_Base1_NegativeResult(t *testing.T) {
	_, err := point.Base1.ToInternal(0)
	assert.True(t, errors.Is(err, point.ErrNegativePoint))
}

func TestPoint_Less(t *testing.T) {
	assert.True(t, point.Point(1).Less(point.Point(2)))
	assert.False(t, point.Point(2).Less(point.Point(2)))
}
