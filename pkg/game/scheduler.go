package game

import "sort"

// TimerID 定时器标识
type TimerID uint64

type scheduledCall struct {
	id       TimerID
	deadline float64
	fn       func()
}

// Scheduler 基于帧时间的一次性定时器
//
// 由场景在每帧 Update 中推进。回调按到期时间顺序触发，
// 到期时间相同时按注册顺序（FIFO）触发。回调中新注册的定时器
// 最早在下一次 Update 中触发，即使延迟为 0。
// 不支持取消单个定时器；场景退出时调用 Clear 丢弃全部待触发回调。
type Scheduler struct {
	now     float64
	nextID  TimerID
	pending []scheduledCall
}

// NewScheduler 创建定时器
func NewScheduler() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Schedule 在 delay 秒后执行 fn，负延迟按 0 处理
func (s *Scheduler) Schedule(delay float64, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	id := s.nextID
	s.nextID++
	s.pending = append(s.pending, scheduledCall{id: id, deadline: s.now + delay, fn: fn})
	return id
}

// Update 推进时间并触发所有到期回调
func (s *Scheduler) Update(deltaTime float64) {
	s.now += deltaTime

	// 先取出本次到期的回调，回调内新注册的定时器留到下一次
	due := make([]scheduledCall, 0)
	rest := s.pending[:0]
	for _, c := range s.pending {
		if c.deadline <= s.now {
			due = append(due, c)
		} else {
			rest = append(rest, c)
		}
	}
	s.pending = rest

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].id < due[j].id
	})

	for _, c := range due {
		if c.fn != nil {
			c.fn()
		}
	}
}

// Clear 丢弃所有待触发的回调
func (s *Scheduler) Clear() {
	s.pending = nil
}

// Pending 待触发的回调数量
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Now 当前累计时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}
