package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code int
}

func (e *codedError) Error() string {
	return "coded"
}

func TestAsType_FindsWrappedTarget(t *testing.T) {
	err := Wrap(&codedError{code: 7}, "outer")

	target, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, target.code)
}

func TestAsType_NoMatch(t *testing.T) {
	target, ok := AsType[*codedError](New("plain"))
	assert.False(t, ok)
	assert.Nil(t, target)
}

func TestCause_ReturnsRoot(t *testing.T) {
	root := New("root")
	err := Wrapf(WithMessage(root, "mid"), "top %d", 1)

	assert.Equal(t, root, Cause(err))
	assert.True(t, Is(err, root))
}
