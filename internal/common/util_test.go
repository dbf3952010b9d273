package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("EZTK123")
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestAPIKeyName(t *testing.T) {
	assert.Equal(t, "EASYPOST_TEST_API_KEY", APIKeyName("TEST"))
	assert.Equal(t, "EASYPOST_PROD_API_KEY", APIKeyName("PROD"))
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{ErrEmptyAPIKey, ErrInvalidMode, ErrAborted}
	for i := range all {
		for j := range all {
			if i != j {
				assert.False(t, errors.Is(all[i], all[j]))
			}
		}
	}
}
