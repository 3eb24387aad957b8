package timeprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wallet-mapper/internal/model"
)

func TestSystemClock(t *testing.T) {
	c := &SystemClock{now: func() time.Time { return model.NetworkEpoch.Add(124 * time.Second) }}
	assert.Equal(t, model.TimeInstant(124), c.CurrentTime())

	real := NewSystemClock().CurrentTime()
	assert.Greater(t, int64(real), int64(0))
}
