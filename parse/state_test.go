package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultState(t *testing.T) {
	s := NewState([]string{"a", "--", "b"})
	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, "", s.CurrentArg())
	assert.Nil(t, s.Remaining())

	next, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", next)

	assert.True(t, s.Advance())
	assert.Equal(t, "a", s.CurrentArg())
	assert.Equal(t, []string{"a", "--", "b"}, s.Remaining())

	assert.True(t, s.Advance())
	assert.False(t, s.Literal())
	s.EnterLiteral()
	assert.True(t, s.Literal())

	assert.True(t, s.Advance())
	assert.Equal(t, []string{"b"}, s.Remaining())
	_, ok = s.Peek()
	assert.False(t, ok)

	assert.False(t, s.Advance())
	assert.Equal(t, 3, s.Pos())
	assert.Equal(t, "", s.CurrentArg())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Literal())
}
