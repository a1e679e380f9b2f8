//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 确保 Android 偏好设置目录存在并可写
// gdata 在 Android 上使用 /data/data/{package}/ 作为存储根目录，
// 但不会预先创建对象子目录，必须在 gdata.Open 之前调用。
//
// 返回：
//   - error: 如果创建目录失败返回错误
func EnsureStorageDir() error {
	app, err := detectAndroidApp()
	if err != nil {
		return fmt.Errorf("failed to detect Android app: %w", err)
	}

	prefsDir := filepath.Join("/data/data", app, "prefs")
	if err := os.MkdirAll(prefsDir, 0755); err != nil {
		return fmt.Errorf("failed to create prefs directory %s: %w", prefsDir, err)
	}

	probe := filepath.Join(prefsDir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("prefs directory %s is not writable: %w", prefsDir, err)
	}
	os.Remove(probe)

	return nil
}

// detectAndroidApp 从 /proc/self/cmdline 读取应用包名
func detectAndroidApp() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(strings.ReplaceAll(string(data), "\x00", ""))
	if name == "" {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}
	return name, nil
}
