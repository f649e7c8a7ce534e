package container

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "op target and cause",
			err:  &Error{Kind: KindOperationFailed, Op: "create", Target: "container-alpine-latest-1", Err: errors.New("name already in use")},
			want: "create container-alpine-latest-1: name already in use",
		},
		{
			name: "op and target only",
			err:  &Error{Kind: KindNotFound, Op: "find", Target: "hayalet"},
			want: "find hayalet",
		},
		{
			name: "op and cause only",
			err:  &Error{Kind: KindRuntimeUnavailable, Op: "container list", Err: errors.New("connection refused")},
			want: "container list: connection refused",
		},
		{
			name: "op only",
			err:  &Error{Kind: KindOperationFailed, Op: "start"},
			want: "start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindPredicates(t *testing.T) {
	notFound := &Error{Kind: KindNotFound, Op: "find", Target: "x"}
	resolution := &Error{Kind: KindResolutionFailed, Op: "pull", Target: "alpine:latest", Err: errors.New("manifest unknown")}
	operation := &Error{Kind: KindOperationFailed, Op: "create", Err: errors.New("conflict")}
	unavailable := &Error{Kind: KindRuntimeUnavailable, Op: "container list", Err: errors.New("connection refused")}

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsResolutionFailed(resolution))
	assert.True(t, IsOperationFailed(operation))
	assert.True(t, IsRuntimeUnavailable(unavailable))

	assert.False(t, IsNotFound(operation))
	assert.False(t, IsResolutionFailed(notFound))
	assert.False(t, IsOperationFailed(unavailable))
	assert.False(t, IsRuntimeUnavailable(resolution))
}

func TestKindPredicatesRejectForeignErrors(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("sıradan hata")))
	assert.False(t, IsOperationFailed(nil))
	assert.False(t, IsRuntimeUnavailable(errors.New("sıradan hata")))
}

func TestKindPredicatesSeeThroughWrapping(t *testing.T) {
	inner := &Error{Kind: KindNotFound, Op: "find", Target: "x"}
	wrapped := fmt.Errorf("durum sorgusu başarısız: %w", inner)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsOperationFailed(wrapped))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &Error{Kind: KindRuntimeUnavailable, Op: "container list", Err: cause}

	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, errors.Unwrap(&Error{Kind: KindNotFound, Op: "find", Target: "x"}))
}
