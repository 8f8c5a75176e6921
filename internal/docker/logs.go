package docker

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

// LogSource 是读取容器日志的窄接口。
// 按本地文件读取依赖守护进程的磁盘布局，并不稳定，因此与 Client 分开，
// 以便换成基于 API 的日志流而不影响 Worker。
type LogSource interface {
	ReadLogs(ctx context.Context, containerID string) (string, error)
}

const (
	// DefaultLogsDir json-file 日志驱动的默认根目录
	DefaultLogsDir = "/var/lib/docker/containers"
	// DefaultLogTail 默认只保留最后 N 行
	DefaultLogTail = 500
)

// FileLogSource 从 <dir>/<id>/<id>-json.log 读取日志并去掉 JSON 包装
type FileLogSource struct {
	dir  string
	tail int
}

// NewFileLogSource 创建基于本地文件的日志源，tail <= 0 表示全部
func NewFileLogSource(dir string, tail int) *FileLogSource {
	if dir == "" {
		dir = DefaultLogsDir
	}
	return &FileLogSource{dir: dir, tail: tail}
}

// Path 返回容器日志文件路径
func (s *FileLogSource) Path(containerID string) (string, error) {
	if containerID == "" || strings.ContainsAny(containerID, `/\`) || containerID == "." || containerID == ".." {
		return "", fmt.Errorf("非法的容器 ID: %q", containerID)
	}
	return filepath.Join(s.dir, containerID, containerID+"-json.log"), nil
}

// ReadLogs 读取并剥离日志文件
func (s *FileLogSource) ReadLogs(ctx context.Context, containerID string) (string, error) {
	path, err := s.Path(containerID)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("打开日志文件失败: %w", err)
	}
	defer f.Close()

	return stripJSONLog(ctx, f, s.tail)
}

// jsonLogLine json-file 驱动的单行格式
type jsonLogLine struct {
	Log    string `json:"log"`
	Stream string `json:"stream"`
}

// stripJSONLog 逐行解析 json-file 日志，只保留 log 字段；无法解析的行原样保留
func stripJSONLog(ctx context.Context, r io.Reader, tail int) (string, error) {
	scanner := bufio.NewScanner(r)

	// 增加缓冲区大小以处理长日志行
	const maxCapacity = 1024 * 1024 // 1MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lines := newTailBuffer(tail)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var entry jsonLogLine
		if err := json.Unmarshal(raw, &entry); err != nil {
			lines.add(string(raw))
			continue
		}
		lines.add(strings.TrimRight(entry.Log, "\r\n"))
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("读取日志失败: %w", err)
	}

	return strings.Join(lines.items(), "\n"), nil
}

// tailBuffer 只保留最后 limit 行
type tailBuffer struct {
	limit int
	lines []string
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (b *tailBuffer) add(line string) {
	b.lines = append(b.lines, line)
	if b.limit > 0 && len(b.lines) > b.limit {
		b.lines = b.lines[len(b.lines)-b.limit:]
	}
}

func (b *tailBuffer) items() []string {
	return b.lines
}

// APILogSource 通过守护进程 API 读取日志，与 FileLogSource 可互换
type APILogSource struct {
	client *LocalClient
	tail   int
}

// NewAPILogSource 基于已连接的客户端创建日志源
func NewAPILogSource(client *LocalClient, tail int) *APILogSource {
	return &APILogSource{client: client, tail: tail}
}

// ReadLogs 获取日志并解复用 stdout/stderr
func (s *APILogSource) ReadLogs(ctx context.Context, containerID string) (string, error) {
	if s == nil || s.client == nil || s.client.cli == nil {
		return "", ErrNotInitialized
	}

	opts := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	}
	if s.tail > 0 {
		opts.Tail = strconv.Itoa(s.tail)
	}

	rc, err := s.client.cli.ContainerLogs(ctx, containerID, opts)
	if err != nil {
		return "", fmt.Errorf("获取容器日志失败: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("读取容器日志失败: %w", err)
	}

	return demuxLogs(raw), nil
}

// demuxLogs 处理多路复用格式；TTY 容器的日志不是多路复用的，原样返回
func demuxLogs(raw []byte) string {
	var out bytes.Buffer
	if _, err := stdcopy.StdCopy(&out, &out, bytes.NewReader(raw)); err != nil || (out.Len() == 0 && len(raw) > 0) {
		out.Reset()
		out.Write(raw)
	}
	return strings.TrimRight(out.String(), "\r\n")
}
