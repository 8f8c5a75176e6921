package backend

import "fmt"

// Kind 命令类型
type Kind int

const (
	KindListContainers Kind = iota
	KindStartContainer
	KindStopContainer
	KindRemoveContainer
	KindGetLogs
	KindCreateContainer
)

// String 返回命令类型名称，用于日志
func (k Kind) String() string {
	switch k {
	case KindListContainers:
		return "list"
	case KindStartContainer:
		return "start"
	case KindStopContainer:
		return "stop"
	case KindRemoveContainer:
		return "remove"
	case KindGetLogs:
		return "logs"
	case KindCreateContainer:
		return "create"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Command 是 UI 发往 Worker 的请求。
// 只有本包定义的类型实现它，Worker 可以穷举处理。
type Command interface {
	Kind() Kind
	// Target 返回操作对象（容器 ID 或名称），列表命令为空
	Target() string
	command()
}

// ListContainers 请求完整的容器快照
type ListContainers struct{}

// StartContainer 启动指定 ID 的容器
type StartContainer struct {
	ID string
}

// StopContainer 停止指定 ID 的容器
type StopContainer struct {
	ID             string
	TimeoutSeconds int // 交给守护进程的优雅停止时间
}

// RemoveContainer 删除指定 ID 的容器
type RemoveContainer struct {
	ID    string
	Force bool
}

// GetLogs 读取指定 ID 容器的日志
type GetLogs struct {
	ID string
}

// CreateContainer 基于镜像创建容器
type CreateContainer struct {
	Name  string
	Image string
}

func (ListContainers) Kind() Kind  { return KindListContainers }
func (StartContainer) Kind() Kind  { return KindStartContainer }
func (StopContainer) Kind() Kind   { return KindStopContainer }
func (RemoveContainer) Kind() Kind { return KindRemoveContainer }
func (GetLogs) Kind() Kind         { return KindGetLogs }
func (CreateContainer) Kind() Kind { return KindCreateContainer }

func (ListContainers) Target() string    { return "" }
func (c StartContainer) Target() string  { return c.ID }
func (c StopContainer) Target() string   { return c.ID }
func (c RemoveContainer) Target() string { return c.ID }
func (c GetLogs) Target() string         { return c.ID }
func (c CreateContainer) Target() string { return c.Name }

func (ListContainers) command()  {}
func (StartContainer) command()  {}
func (StopContainer) command()   {}
func (RemoveContainer) command() {}
func (GetLogs) command()         {}
func (CreateContainer) command() {}

// IsMutation 判断命令是否会修改容器状态
func IsMutation(cmd Command) bool {
	switch cmd.Kind() {
	case KindStartContainer, KindStopContainer, KindRemoveContainer, KindCreateContainer:
		return true
	default:
		return false
	}
}
