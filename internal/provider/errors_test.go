package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKind(t *testing.T) {
	quota := NewError(KindQuota, "rate limited", nil)
	assert.True(t, IsKind(quota, KindQuota))
	assert.False(t, IsKind(quota, KindTransient))

	wrapped := fmt.Errorf("searchExternal() > %w", quota)
	assert.True(t, IsKind(wrapped, KindQuota))

	assert.False(t, IsKind(errors.New("plain"), KindQuota))
	assert.False(t, IsKind(nil, KindQuota))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "Transient is retryable", err: NewError(KindTransient, "timeout", nil), want: true},
		{name: "Quota is retryable", err: NewError(KindQuota, "rate limited", nil), want: true},
		{name: "Invalid response is not", err: NewError(KindInvalidResponse, "bad payload", nil), want: false},
		{name: "Unknown errors are assumed transient", err: errors.New("connection reset"), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewError(KindTransient, "request failed", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transient")
	assert.Contains(t, err.Error(), "underlying")
}
