package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cmtui/internal/docker"
	"cmtui/internal/logging"
)

// ErrNotConnected 在 Connect 成功之前调用 Run
var ErrNotConnected = errors.New("worker 尚未连接守护进程")

// Dialer 建立守护进程连接
type Dialer func(ctx context.Context, endpoint string) (docker.Client, error)

// LogSourceFactory 基于已连接的客户端选择日志源
type LogSourceFactory func(client docker.Client) docker.LogSource

// Options Worker 配置
type Options struct {
	Endpoint     string           // 守护进程 socket 路径
	Dial         Dialer           // 为空时使用 docker.Dial
	LogSource    LogSourceFactory // 为空时使用本地 json-file 日志
	AckMutations bool             // 变更成功后是否发送 Ack
	Logger       *logrus.Entry
}

// Worker 独占守护进程连接，按 FIFO 顺序逐个执行命令。
// 单个命令失败只记录日志，不会中断循环。
type Worker struct {
	commands <-chan Command
	results  chan<- Result
	opts     Options
	log      *logrus.Entry

	client docker.Client
	logs   docker.LogSource
}

// NewWorker 创建 Worker，results 由 Worker 在退出时关闭
func NewWorker(commands <-chan Command, results chan<- Result, opts Options) *Worker {
	if opts.Dial == nil {
		opts.Dial = func(ctx context.Context, endpoint string) (docker.Client, error) {
			c, err := docker.Dial(ctx, endpoint)
			if err != nil {
				return nil, err
			}
			return c, nil
		}
	}
	log := opts.Logger
	if log == nil {
		log = logging.For("backend")
	}
	return &Worker{
		commands: commands,
		results:  results,
		opts:     opts,
		log:      log,
	}
}

// Connect 建立连接。失败属于启动期致命错误，由调用方终止程序。
func (w *Worker) Connect(ctx context.Context) error {
	client, err := w.opts.Dial(ctx, w.opts.Endpoint)
	if err != nil {
		w.log.WithError(err).WithField("endpoint", w.opts.Endpoint).Error("connect failed")
		return err
	}
	w.client = client

	if w.opts.LogSource != nil {
		w.logs = w.opts.LogSource(client)
	}
	if w.logs == nil {
		w.logs = docker.NewFileLogSource("", docker.DefaultLogTail)
	}

	w.log.WithField("endpoint", w.opts.Endpoint).Info("connected")
	return nil
}

// Run 处理命令直到命令队列关闭或 ctx 取消。
// 退出时关闭结果队列并释放连接。
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.results)

	if w.client == nil {
		return ErrNotConnected
	}
	defer func() {
		if err := w.client.Close(); err != nil {
			w.log.WithError(err).Warn("close client failed")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("context cancelled, worker exiting")
			return nil
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("command queue closed, worker exiting")
				return nil
			}
			w.handle(ctx, cmd)
		}
	}
}

// handle 执行单个命令，错误只记录不返回
func (w *Worker) handle(ctx context.Context, cmd Command) {
	entry := w.log.WithFields(logrus.Fields{
		"cmd_id": uuid.New().String()[:8],
		"op":     cmd.Kind().String(),
	})
	if target := cmd.Target(); target != "" {
		entry = entry.WithField("target", target)
	}
	entry.Debug("command received")

	var err error
	switch c := cmd.(type) {
	case ListContainers:
		var containers []docker.Container
		containers, err = w.client.ListContainers(ctx)
		if err == nil {
			w.publish(ctx, ContainerList{Containers: containers})
		}

	case StartContainer:
		err = w.client.StartContainer(ctx, c.ID)
		w.ack(ctx, err, c.Kind(), c.ID)

	case StopContainer:
		err = w.client.StopContainer(ctx, c.ID, c.TimeoutSeconds)
		w.ack(ctx, err, c.Kind(), c.ID)

	case RemoveContainer:
		err = w.client.RemoveContainer(ctx, c.ID, c.Force)
		w.ack(ctx, err, c.Kind(), c.ID)

	case CreateContainer:
		var id string
		id, err = w.client.CreateContainer(ctx, c.Name, c.Image)
		if err == nil {
			entry = entry.WithField("container", id)
		}
		w.ack(ctx, err, c.Kind(), id)

	case GetLogs:
		var text string
		text, err = w.logs.ReadLogs(ctx, c.ID)
		// 读取失败也要回复，UI 据此显示“日志不可用”
		w.publish(ctx, LogText{ContainerID: c.ID, Text: text, Available: err == nil})

	default:
		err = fmt.Errorf("未知命令类型: %T", cmd)
	}

	if err != nil {
		entry.WithError(err).Warn("command failed")
		return
	}
	entry.Debug("command done")
}

func (w *Worker) ack(ctx context.Context, err error, op Kind, id string) {
	if err != nil || !w.opts.AckMutations {
		return
	}
	w.publish(ctx, Ack{Op: op, ContainerID: id})
}

// publish 结果队列满时阻塞等待 UI 消费，ctx 取消时放弃
func (w *Worker) publish(ctx context.Context, r Result) bool {
	select {
	case <-ctx.Done():
		return false
	case w.results <- r:
		return true
	}
}
