package docker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	sdk "github.com/docker/docker/client"
)

// 守护进程连接说明：
//
// 1. **本地 Unix Socket（默认）**
//    - 默认地址：/var/run/docker.sock
//    - 通过 -socket 参数或 CMTUI_SOCKET 环境变量覆盖
//
// 2. **TLS / API 版本等其它参数**
//    - 仍然沿用 SDK 的环境变量（DOCKER_TLS_VERIFY、DOCKER_CERT_PATH、DOCKER_API_VERSION）
//
// 连接只由后台 Worker 持有，UI 线程从不直接调用这里的方法。

// DefaultSocketPath 默认的守护进程 socket 路径
const DefaultSocketPath = "/var/run/docker.sock"

var (
	// ErrNotInitialized 客户端未初始化（nil 接收者或未拨号）
	ErrNotInitialized = errors.New("Docker 客户端未初始化")

	// ErrConnection 初始连接失败，属于启动期致命错误
	ErrConnection = errors.New("无法连接容器管理守护进程")

	// ErrPermission 当前用户无权访问守护进程 socket
	ErrPermission = errors.New("没有访问守护进程 socket 的权限")
)

// Container 表示守护进程返回的一个容器快照（只读的临时副本）
type Container struct {
	ID      string    // 容器 ID（完整，稳定且唯一）
	Name    string    // 容器名称（不保证唯一，不能作为操作键）
	Image   *ImageRef // 镜像引用，nil 表示守护进程没有返回该字段
	State   *State    // 生命周期状态，nil 表示缺失
	Created time.Time // 创建时间
}

// ImageRef 镜像引用
type ImageRef struct {
	Name string
}

// State 容器生命周期状态
type State struct {
	Status  string // 文本状态: running, exited, paused 等
	Running bool   // 是否运行中
}

// Client 抽象了后台 Worker 需要的守护进程能力。
// 所有操作都按稳定的容器 ID 进行，不再支持按名称查找。
type Client interface {
	// ListContainers 获取全部容器（包括已停止的）
	ListContainers(ctx context.Context) ([]Container, error)

	// StartContainer 启动容器
	StartContainer(ctx context.Context, containerID string) error

	// StopContainer 停止容器
	// timeout: 交给守护进程的优雅停止时间（秒），客户端自身不再额外计时
	StopContainer(ctx context.Context, containerID string, timeout int) error

	// RemoveContainer 删除容器
	// force: 是否强制删除（即使容器正在运行）
	RemoveContainer(ctx context.Context, containerID string, force bool) error

	// CreateContainer 基于镜像创建容器，返回新容器 ID
	CreateContainer(ctx context.Context, name, image string) (string, error)

	// Close 关闭连接，释放资源
	Close() error
}

// LocalClient 封装本地 Docker SDK 客户端实现。
type LocalClient struct {
	cli *sdk.Client
}

var _ Client = (*LocalClient)(nil)

// Dial 连接 socketPath 上的守护进程并 Ping 一次。
// socketPath 为空时沿用 SDK 的环境变量默认值。失败时返回包装了 ErrConnection 的错误。
func Dial(ctx context.Context, socketPath string) (*LocalClient, error) {
	opts := []sdk.Opt{
		sdk.FromEnv,
		sdk.WithAPIVersionNegotiation(),
	}
	if socketPath != "" {
		opts = append(opts, sdk.WithHost("unix://"+socketPath))
	}

	cli, err := sdk.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: 创建 Docker 客户端失败: %v", ErrConnection, err)
	}

	if _, err := cli.Ping(ctx); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("%w (%s): %v", ErrConnection, cli.DaemonHost(), err)
	}

	return &LocalClient{cli: cli}, nil
}

// ListContainers 获取容器列表
func (c *LocalClient) ListContainers(ctx context.Context) ([]Container, error) {
	if c == nil || c.cli == nil {
		return nil, ErrNotInitialized
	}

	containers, err := c.cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("获取容器列表失败: %w", err)
	}

	result := make([]Container, 0, len(containers))
	for _, s := range containers {
		// 容器名称（去除前导 /）
		name := ""
		if len(s.Names) > 0 {
			name = s.Names[0]
			if len(name) > 0 && name[0] == '/' {
				name = name[1:]
			}
		}

		item := Container{
			ID:      s.ID,
			Name:    name,
			Created: time.Unix(s.Created, 0),
		}
		if s.Image != "" {
			item.Image = &ImageRef{Name: s.Image}
		}
		if status := string(s.State); status != "" {
			item.State = &State{Status: status, Running: status == "running"}
		}

		result = append(result, item)
	}

	return result, nil
}

// StartContainer 启动已停止的容器
func (c *LocalClient) StartContainer(ctx context.Context, containerID string) error {
	if c == nil || c.cli == nil {
		return ErrNotInitialized
	}

	if err := c.cli.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return fmt.Errorf("启动容器失败: %w", err)
	}
	return nil
}

// StopContainer 停止运行中的容器，先发 SIGTERM，超过 timeout 秒后由守护进程强制结束
func (c *LocalClient) StopContainer(ctx context.Context, containerID string, timeout int) error {
	if c == nil || c.cli == nil {
		return ErrNotInitialized
	}

	var timeoutPtr *int
	if timeout >= 0 {
		timeoutPtr = &timeout
	}

	err := c.cli.ContainerStop(ctx, containerID, container.StopOptions{
		Signal:  "SIGTERM",
		Timeout: timeoutPtr,
	})
	if err != nil {
		return fmt.Errorf("停止容器失败: %w", err)
	}
	return nil
}

// RemoveContainer 删除容器
func (c *LocalClient) RemoveContainer(ctx context.Context, containerID string, force bool) error {
	if c == nil || c.cli == nil {
		return ErrNotInitialized
	}

	err := c.cli.ContainerRemove(ctx, containerID, container.RemoveOptions{
		Force: force,
	})
	if err != nil {
		return fmt.Errorf("删除容器失败: %w", err)
	}
	return nil
}

// CreateContainer 使用最小模板创建容器：只指定镜像和名称，不自动重启
func (c *LocalClient) CreateContainer(ctx context.Context, name, image string) (string, error) {
	if c == nil || c.cli == nil {
		return "", ErrNotInitialized
	}
	if image == "" {
		return "", fmt.Errorf("创建容器失败: 镜像不能为空")
	}

	resp, err := c.cli.ContainerCreate(ctx,
		&container.Config{Image: image},
		&container.HostConfig{
			RestartPolicy: container.RestartPolicy{Name: container.RestartPolicyDisabled},
		},
		nil, nil, name)
	if err != nil {
		return "", fmt.Errorf("创建容器失败: %w", err)
	}
	return resp.ID, nil
}

// Close 关闭 Docker 客户端连接
func (c *LocalClient) Close() error {
	if c == nil || c.cli == nil {
		return nil
	}
	return c.cli.Close()
}
