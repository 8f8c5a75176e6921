package backend

import "cmtui/internal/docker"

// Result 是 Worker 发回 UI 的数据
type Result interface {
	result()
}

// ContainerList 一次完整的容器快照，替换 UI 中的全部行
type ContainerList struct {
	Containers []docker.Container
}

// LogText 某个容器的日志内容。
// Available 为 false 表示日志读取失败，Text 为空。
type LogText struct {
	ContainerID string
	Text        string
	Available   bool
}

// Ack 变更命令已成功完成（仅在开启 AckMutations 时发送）
type Ack struct {
	Op          Kind
	ContainerID string
}

func (ContainerList) result() {}
func (LogText) result()       {}
func (Ack) result()           {}
