package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorChain(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Wrap(cause, CodeConflict, MsgEntityConflict)

	assert.True(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "conflict: entity already exists: duplicate key value violates unique constraint", err.Error())

	wrapped := fmt.Errorf("create user: %w", err)
	assert.Equal(t, CodeConflict, CodeOf(wrapped))
	assert.Equal(t, CodeUnknown, CodeOf(cause))
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalid, "guests must be less than or equal to room capacity (%d)", 4)
	assert.Equal(t, "guests must be less than or equal to room capacity (4)", err.Message)
	assert.Equal(t, "invalid: guests must be less than or equal to room capacity (4)", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWithMeta(t *testing.T) {
	err := New(CodeNotFound, MsgEntityNotFound).WithMeta("id", "abc")
	assert.Equal(t, "abc", err.Meta["id"])
}
