package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harou24/oa-cli/internal/failure"
)

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *failure.Error
		want string
	}{
		{"status", failure.Status(401, ""), "http status 401"},
		{"status with message", failure.Status(500, "boom"), "http status 500: boom"},
		{"missing field", failure.Missing("choices"), `malformed response: missing "choices"`},
		{"wrapped", failure.New(failure.Transport, "", errors.New("dial tcp: timeout")), "transport error: dial tcp: timeout"},
		{"no credential", failure.New(failure.NoCredential, "empty input", nil), "no credential: empty input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	inner := failure.Missing("data")
	err := fmt.Errorf("generate image: %w", inner)

	assert.Equal(t, failure.MalformedResponse, failure.KindOf(err))
	assert.True(t, failure.Is(err, failure.MalformedResponse))
	assert.False(t, failure.Is(err, failure.Transport))

	var fe *failure.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "data", fe.Field)
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, failure.Kind(0), failure.KindOf(errors.New("plain")))
	assert.False(t, failure.Is(nil, failure.Transport))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := failure.New(failure.ConfigRead, "read /x", cause)
	assert.ErrorIs(t, err, cause)
}
