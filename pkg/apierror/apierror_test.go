package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatusCode(t *testing.T) {
	tests := []struct {
		statusCode int
		wantKind   Kind
	}{
		{http.StatusUnauthorized, KindAuthentication},
		{http.StatusForbidden, KindAuthentication},
		{http.StatusNotFound, KindNotFound},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusBadRequest, KindNetworkOrServer},
		{http.StatusInternalServerError, KindNetworkOrServer},
		{http.StatusBadGateway, KindNetworkOrServer},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.statusCode), func(t *testing.T) {
			err := FromStatusCode(tt.statusCode, []byte("body"))
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestFromStatusCodeTruncatesBody(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}

	err := FromStatusCode(http.StatusInternalServerError, long)
	assert.Less(t, len(err.Error()), 300)
	assert.Contains(t, err.Error(), "...")
}

func TestKindOf(t *testing.T) {
	t.Run("classified error", func(t *testing.T) {
		err := Newf(KindRateLimited, "slow down")
		assert.Equal(t, KindRateLimited, KindOf(err))
	})

	t.Run("wrapped classified error", func(t *testing.T) {
		err := fmt.Errorf("fetch file: %w", New(KindNotFound, errors.New("missing")))
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.True(t, IsNotFound(err))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, KindUnknown, KindOf(nil))
	})
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsConfigurationMissing(Newf(KindConfigurationMissing, "missing")))
	assert.True(t, IsAuthentication(Newf(KindAuthentication, "denied")))
	assert.True(t, IsRateLimited(Newf(KindRateLimited, "throttled")))
	assert.True(t, IsMalformedOutput(Newf(KindMalformedOutput, "garbage")))
	assert.False(t, IsAuthentication(Newf(KindNotFound, "missing")))
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("root cause")
	err := New(KindNetworkOrServer, inner)
	assert.True(t, errors.Is(err, inner))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "authentication failure", KindAuthentication.String())
	assert.Equal(t, "rate limited", KindRateLimited.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
