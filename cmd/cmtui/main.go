package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"cmtui/internal/app"
	"cmtui/internal/config"
	"cmtui/internal/docker"
	"cmtui/internal/i18n"
	"cmtui/internal/logging"
)

func main() {
	cfg := config.MustLoad()
	i18n.Init(cfg.Lang)

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T("config_error"), err)
		os.Exit(2)
	}

	if err := logging.Configure(cfg.LogFile, cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T("config_error"), err)
		os.Exit(2)
	}

	logging.For("main").WithFields(logrus.Fields{
		"socket":       cfg.Socket,
		"config":       cfg.Path,
		"logs_source":  cfg.LogsSource,
		"fps":          cfg.FPS,
		"refresh":      cfg.Refresh.String(),
		"select_by":    cfg.SelectBy,
		"ack":          cfg.AckMutations,
		"stop_timeout": cfg.StopTimeout,
	}).Info("starting")

	code := run(cfg)
	logging.Close()
	os.Exit(code)
}

// run 返回进程退出码
func run(cfg config.Config) int {
	// TUI 需要真实终端
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fail(errors.New(i18n.T("not_a_terminal")))
	}

	// 启动前确认当前用户对 socket 有读写权限
	if err := docker.CheckSocketAccess(cfg.Socket); err != nil {
		return fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		return fail(err)
	}
	return 0
}

func fail(err error) int {
	logging.Error(err)

	msg := i18n.T("fatal_error")
	switch {
	case errors.Is(err, docker.ErrPermission):
		msg = i18n.T("permission_denied")
	case errors.Is(err, docker.ErrConnection):
		msg = i18n.T("connection_failed")
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	return 1
}
