package utils

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestEaseInOutCubicEndpoints 测试缓动函数端点和中点
func TestEaseInOutCubicEndpoints(t *testing.T) {
	cases := map[float64]float64{
		0:   0,
		0.5: 0.5,
		1:   1,
		-1:  0, // 超出范围被限制
		2:   1,
	}
	for in, want := range cases {
		if got := EaseInOutCubic(in); !almostEqual(got, want) {
			t.Errorf("EaseInOutCubic(%v) = %v, want %v", in, got, want)
		}
	}
}

// TestEaseInOutCubicMonotonic 测试缓动函数单调递增
func TestEaseInOutCubicMonotonic(t *testing.T) {
	prev := EaseInOutCubic(0)
	for i := 1; i <= 100; i++ {
		cur := EaseInOutCubic(float64(i) / 100)
		if cur < prev {
			t.Fatalf("EaseInOutCubic not monotonic at %d: %v < %v", i, cur, prev)
		}
		prev = cur
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if got := Lerp(1, 0, 0.25); !almostEqual(got, 0.75) {
		t.Errorf("Lerp(1, 0, 0.25) = %v, want 0.75", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Lerp(2, 4, 0) = %v, want 2", got)
	}
	if got := EaseLinear(0.3); got != 0.3 {
		t.Errorf("EaseLinear(0.3) = %v, want 0.3", got)
	}
}
