package task

import "time"

// waitKind 任务挂起的原因
type waitKind int

const (
	waitNone waitKind = iota
	waitFrame
	waitSleep
	waitTask
)

// Task 协作式任务句柄
//
// 挂起原语（NextFrame、Sleep、Relayout、Await）只能在该任务自己的任务体内调用。
type Task struct {
	runner *Runner
	name   string

	resume chan time.Duration // Runner -> 任务：恢复执行，携带帧时间戳
	yield  chan struct{}      // 任务 -> Runner：已挂起或已结束

	done bool

	kind     waitKind
	since    uint64        // 挂起时的帧号
	deadline time.Duration // waitSleep 的唤醒时间
	other    *Task         // waitTask 等待的任务
}

// Completed 返回一个已经结束的任务
// 用于无操作分支仍需返回可等待对象的场合
func Completed() *Task {
	return &Task{done: true}
}

// Done 任务是否已结束
func (t *Task) Done() bool {
	return t.done
}

// Name 返回任务名
func (t *Task) Name() string {
	return t.name
}

// NextFrame 挂起到下一帧，返回该帧的时间戳
func (t *Task) NextFrame() time.Duration {
	t.kind = waitFrame
	return t.suspend()
}

// Sleep 挂起至少 d，在截止时间之后的第一帧恢复
// 即使 d <= 0 也不会在当前帧内恢复
func (t *Task) Sleep(d time.Duration) {
	t.kind = waitSleep
	t.deadline = t.runner.now + d
	t.suspend()
}

// Relayout 挂起到宿主完成一次布局/绘制之后
// 宿主在绘制之后的下一次 Update 中调用 Tick，因此等价于等待下一帧
func (t *Task) Relayout() {
	t.kind = waitFrame
	t.suspend()
}

// Await 挂起直到 other 结束；other 已结束时立即返回
func (t *Task) Await(other *Task) {
	if other == nil || other.done {
		return
	}
	t.kind = waitTask
	t.other = other
	t.suspend()
	t.other = nil
}

// suspend 把控制权交还给 Runner，并等待被唤醒
func (t *Task) suspend() time.Duration {
	t.since = t.runner.frame
	t.yield <- struct{}{}
	now := <-t.resume
	t.kind = waitNone
	return now
}

// ready 判断挂起条件是否已满足
func (t *Task) ready() bool {
	r := t.runner
	switch t.kind {
	case waitFrame:
		return r.frame > t.since
	case waitSleep:
		return r.frame > t.since && r.now >= t.deadline
	case waitTask:
		return t.other.done
	default:
		return false
	}
}

// step 恢复任务并等待它再次挂起或结束
func (t *Task) step(now time.Duration) {
	t.resume <- now
	<-t.yield
}
