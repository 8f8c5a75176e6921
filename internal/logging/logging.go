package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// 终端被 TUI 占用，日志只能写文件；未配置路径时全部丢弃。

var (
	mu      sync.Mutex
	logger  = newLogger()
	logFile *os.File
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure 设置日志文件和级别。path 为空时丢弃日志，目录不存在时自动创建。
func Configure(path string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	closeFileLocked()

	if strings.TrimSpace(path) == "" {
		logger.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return fmt.Errorf("创建日志目录失败: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return fmt.Errorf("打开日志文件失败: %w", err)
	}
	logFile = f
	logger.SetOutput(f)
	return nil
}

// Close 关闭日志文件
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	logger.SetOutput(io.Discard)
}

func closeFileLocked() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// For 返回带 component 字段的日志条目
func For(component string) *logrus.Entry {
	return logger.WithField("component", component)
}

// Error 记录错误，nil 忽略
func Error(err error) {
	if err == nil {
		return
	}
	logger.WithError(err).Error("fatal")
}
