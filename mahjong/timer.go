package mahjong

import (
	"time"
)

// Timer 轮询式定时器，由每秒一次的OnGameTimer驱动
type Timer struct {
	beginTime   time.Time
	triggerTime time.Time
	callback    func()
	onCountdown func(remaining int32)
	lastRemain  int32
}

func NewTimer() *Timer {
	return &Timer{}
}

// Schedule 安排定时任务
func (t *Timer) Schedule(delay time.Duration, callback func()) {
	t.beginTime = time.Now()
	t.triggerTime = t.beginTime.Add(delay)
	t.callback = callback
	t.onCountdown = nil
}

// ScheduleCountdown 等待决策专用，剩余秒数变化时回调一次
func (t *Timer) ScheduleCountdown(delay time.Duration, onCountdown func(remaining int32), callback func()) {
	t.Schedule(delay, callback)
	t.onCountdown = onCountdown
	t.lastRemain = int32((delay + time.Second - 1) / time.Second)
}

func (t *Timer) Cancel() {
	t.callback = nil
	t.onCountdown = nil
}

// Elapsed 自本次调度以来经过的时长，扣减加时银行用
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.beginTime)
}

// OnTick 到点触发一次回调，未到点则推进倒计时
func (t *Timer) OnTick() {
	if t.callback == nil {
		return
	}
	if time.Now().After(t.triggerTime) {
		cb := t.callback
		t.callback = nil
		t.onCountdown = nil
		cb()
		return
	}
	if t.onCountdown == nil {
		return
	}
	remain := int32((time.Until(t.triggerTime) + time.Second - 1) / time.Second)
	if remain != t.lastRemain {
		t.lastRemain = remain
		t.onCountdown(remain)
	}
}
