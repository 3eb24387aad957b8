package timeprovider

import (
	"time"

	"wallet-mapper/internal/model"
)

// SystemClock 以系统时间换算网络时间
type SystemClock struct {
	now func() time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{now: time.Now}
}

func (c *SystemClock) CurrentTime() model.TimeInstant {
	return model.TimeInstantFromTime(c.now())
}
