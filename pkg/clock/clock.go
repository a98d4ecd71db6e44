// Package clock 可注入的时间源
package clock

import "time"

// Clock 领域服务通过Clock获取当前时间，测试时注入固定时间
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem 返回基于time.Now的时钟
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

// NewFixed 返回始终停在t的时钟
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
