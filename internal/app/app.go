package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"cmtui/internal/backend"
	"cmtui/internal/config"
	"cmtui/internal/docker"
	"cmtui/internal/logging"
	"cmtui/internal/ui"
)

// deps 可替换的外部依赖，测试时注入
type deps struct {
	dial        backend.Dialer
	programOpts []tea.ProgramOption
}

// Run 连接守护进程，然后在同一个 errgroup 中运行 Worker 和 UI。
// 初始连接失败在 UI 启动前返回。
func Run(ctx context.Context, cfg config.Config) error {
	return run(ctx, cfg, deps{
		programOpts: []tea.ProgramOption{tea.WithAltScreen()},
	})
}

func run(ctx context.Context, cfg config.Config, d deps) error {
	log := logging.For("app")

	commands := backend.NewCommandQueue(cfg.QueueCapacity)
	results := backend.NewResultQueue(cfg.QueueCapacity)

	worker := backend.NewWorker(commands, results, backend.Options{
		Endpoint:     cfg.Socket,
		Dial:         d.dial,
		LogSource:    logSourceFactory(cfg),
		AckMutations: cfg.AckMutations,
		Logger:       logging.For("backend"),
	})
	if err := worker.Connect(ctx); err != nil {
		return fmt.Errorf("连接守护进程失败: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return worker.Run(gctx)
	})

	g.Go(func() error {
		// UI 是命令队列唯一的发送方，退出后才能关闭
		defer cancel()
		defer close(commands)

		model := ui.NewModel(commands, results, ui.Options{
			FPS:          cfg.FPS,
			RefreshEvery: cfg.RefreshEvery(),
			StopTimeout:  cfg.StopTimeout,
			Policy:       cfg.SelectionPolicy(),
		})

		opts := append([]tea.ProgramOption{tea.WithContext(gctx)}, d.programOpts...)
		final, err := tea.NewProgram(model, opts...).Run()
		var modelErr error
		if m, ok := final.(ui.Model); ok {
			modelErr = m.Err()
		}
		return uiExit(gctx, modelErr, err)
	})

	err := g.Wait()
	log.WithError(err).Info("shutdown")
	return err
}

// uiExit 把 UI 的退出原因归并为一个错误。
// 上下文已取消（信号或 Worker 退出）时，Worker 可能先关闭结果队列，
// 此时的 ErrBackendClosed 属于正常关闭。
func uiExit(ctx context.Context, modelErr, runErr error) error {
	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) {
			logging.For("app").Debug("program killed")
			return nil
		}
		return fmt.Errorf("UI 运行失败: %w", runErr)
	}
	if modelErr != nil {
		if ctx.Err() != nil && errors.Is(modelErr, ui.ErrBackendClosed) {
			logging.For("app").Debug("result queue closed during shutdown")
			return nil
		}
		return modelErr
	}
	return nil
}

// logSourceFactory 按配置选择日志源；api 模式需要真实的 SDK 客户端，否则退回文件
func logSourceFactory(cfg config.Config) backend.LogSourceFactory {
	return func(client docker.Client) docker.LogSource {
		if cfg.LogsSource == config.LogsSourceAPI {
			if local, ok := client.(*docker.LocalClient); ok {
				return docker.NewAPILogSource(local, cfg.LogTail)
			}
			logging.For("app").Warn("api log source needs a daemon client, falling back to files")
		}
		return docker.NewFileLogSource(cfg.LogsDir, cfg.LogTail)
	}
}
