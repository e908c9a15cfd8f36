package view

import "time"

// Timer counts ticks; the view uses it to expire status messages.
type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: target, // start expired so nothing shows until Reset
		targetTime:  target,
	}
}

func (t *Timer) Update() {
	if t.currentTime < t.targetTime {
		t.currentTime += time.Second / 60 // 60 TPS
	}
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}
