//go:build !android

package utils

// EnsureStorageDir 确保偏好设置目录存在（非 Android 平台无需处理）
// gdata 在桌面平台上会自行创建数据目录
func EnsureStorageDir() error {
	return nil
}
