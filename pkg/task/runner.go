// Package task 提供单线程协作式任务调度
//
// 每个任务运行在独立的 goroutine 上，但与 Runner 通过无缓冲 channel 严格交接控制权：
// 任意时刻只有一段代码在执行，共享状态无需加锁。
// 宿主（ebiten 的 Update 或终端前端的 tick）每帧调用一次 Runner.Tick。
//
// 挂起点只有三种：等待下一帧（NextFrame）、等待固定时长（Sleep）、等待布局完成（Relayout）。
// Await 用于等待另一个任务结束。
package task

import (
	"log"
	"time"
)

// Runner 协作式任务调度器
// 非并发安全：所有方法必须在宿主的主循环上调用，或在任务体内调用
type Runner struct {
	frame uint64        // 已执行的 Tick 次数
	now   time.Duration // 最近一次 Tick 的时间戳
	tasks []*Task       // 存活任务（注册顺序，即 FIFO 唤醒顺序）
}

// NewRunner 创建任务调度器
func NewRunner() *Runner {
	return &Runner{
		tasks: make([]*Task, 0),
	}
}

// Go 启动一个新任务
//
// 任务体同步执行，直到第一次挂起或结束后 Go 才返回，
// 因此任务开头的副作用（例如铸造过渡令牌）在调用时立即生效。
//
// 参数：
//   - name: 任务名（用于日志）
//   - fn: 任务体，通过参数 t 调用挂起原语
//
// 返回：
//   - *Task: 可被 Await 的任务句柄
func (r *Runner) Go(name string, fn func(t *Task)) *Task {
	t := &Task{
		runner: r,
		name:   name,
		resume: make(chan time.Duration),
		yield:  make(chan struct{}),
	}
	r.tasks = append(r.tasks, t)

	go t.run(fn)
	<-t.yield

	r.prune()
	return t
}

// Tick 推进一帧
//
// 按注册顺序唤醒所有条件已满足的任务，重复扫描直到没有任务推进，
// 因此等待"本帧刚结束的任务"的任务会在同一帧内继续执行。
//
// 参数：
//   - now: 宿主提供的单调时间戳（自启动起的时长）
func (r *Runner) Tick(now time.Duration) {
	r.frame++
	r.now = now

	for {
		progressed := false
		snapshot := append([]*Task(nil), r.tasks...)
		for _, t := range snapshot {
			if t.done || !t.ready() {
				continue
			}
			t.step(r.now)
			progressed = true
		}
		r.prune()
		if !progressed {
			return
		}
	}
}

// WaitNextFrame 返回一个在下一帧结束的任务
// 供需要帧同步的协作方使用
func (r *Runner) WaitNextFrame() *Task {
	return r.Go("wait-next-frame", func(t *Task) {
		t.NextFrame()
	})
}

// Now 返回最近一次 Tick 的时间戳
func (r *Runner) Now() time.Duration {
	return r.now
}

// Frame 返回已执行的 Tick 次数
func (r *Runner) Frame() uint64 {
	return r.frame
}

// Pending 返回尚未结束的任务数
func (r *Runner) Pending() int {
	return len(r.tasks)
}

// prune 移除已结束的任务
func (r *Runner) prune() {
	alive := r.tasks[:0]
	for _, t := range r.tasks {
		if !t.done {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(r.tasks); i++ {
		r.tasks[i] = nil
	}
	r.tasks = alive
}

func (t *Task) run(fn func(t *Task)) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[TaskRunner] Warning: task %q panicked: %v", t.name, rec)
		}
		t.done = true
		t.yield <- struct{}{}
	}()
	fn(t)
}
