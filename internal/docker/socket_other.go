//go:build !unix

package docker

// CheckSocketAccess 非 Unix 平台没有 socket 文件权限可查，交给 Dial 报错
func CheckSocketAccess(socketPath string) error {
	return nil
}
