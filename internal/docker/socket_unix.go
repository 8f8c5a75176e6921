//go:build unix

package docker

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CheckSocketAccess 检查当前用户能否读写守护进程 socket。
// socket 不存在时返回 ErrConnection，权限不足时返回 ErrPermission。
func CheckSocketAccess(socketPath string) error {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	info, err := os.Stat(socketPath)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("%w: %s (euid=%d)", ErrPermission, socketPath, os.Geteuid())
		}
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if info.Mode()&os.ModeSocket == 0 {
		return fmt.Errorf("%w: %s 不是 socket 文件", ErrConnection, socketPath)
	}

	if err := unix.Access(socketPath, unix.R_OK|unix.W_OK); err != nil {
		return fmt.Errorf("%w: %s (euid=%d): %v", ErrPermission, socketPath, os.Geteuid(), err)
	}
	return nil
}
