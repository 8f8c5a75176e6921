package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"cmtui/internal/docker"
	"cmtui/internal/ui/state"
)

// Config 描述 cmtui 运行所需的全部配置。
// 优先级：默认值 < 配置文件 < 环境变量 < 命令行参数。
type Config struct {
	Socket        string        `yaml:"socket"`           // 守护进程 socket 路径
	StopTimeout   int           `yaml:"stop_timeout"`     // 停止容器的优雅等待时间（秒）
	LogFile       string        `yaml:"log_file"`         // 诊断日志文件，空表示丢弃
	Debug         bool          `yaml:"debug"`            // 输出 debug 级别日志
	Lang          string        `yaml:"lang"`             // en / zh，空表示按 LANG 检测
	FPS           int           `yaml:"fps"`              // 帧率 1..10
	Refresh       time.Duration `yaml:"refresh_interval"` // 容器列表刷新间隔
	LogsSource    string        `yaml:"logs_source"`      // file / api
	LogsDir       string        `yaml:"logs_dir"`         // json-file 日志根目录
	LogTail       int           `yaml:"log_tail"`         // 日志最多保留行数，0 表示全部
	AckMutations  bool          `yaml:"ack_mutations"`    // 变更成功后是否回传 Ack
	SelectBy      string        `yaml:"select_by"`        // index / id
	QueueCapacity int           `yaml:"queue_capacity"`   // 命令/结果队列容量

	Path string `yaml:"-"` // 实际使用的配置文件路径
}

const (
	LogsSourceFile = "file"
	LogsSourceAPI  = "api"
)

const (
	envConfig        = "CMTUI_CONFIG"
	envSocket        = "CMTUI_SOCKET"
	envStopTimeout   = "CMTUI_STOP_TIMEOUT"
	envLogFile       = "CMTUI_LOG_FILE"
	envDebug         = "CMTUI_DEBUG"
	envLang          = "CMTUI_LANG"
	envFPS           = "CMTUI_FPS"
	envRefresh       = "CMTUI_REFRESH"
	envLogsSource    = "CMTUI_LOGS_SOURCE"
	envLogsDir       = "CMTUI_LOGS_DIR"
	envLogTail       = "CMTUI_LOG_TAIL"
	envAck           = "CMTUI_ACK"
	envSelectBy      = "CMTUI_SELECT_BY"
	envQueueCapacity = "CMTUI_QUEUE_CAPACITY"
)

// Default 返回默认配置
func Default() Config {
	return Config{
		Socket:        docker.DefaultSocketPath,
		StopTimeout:   10,
		FPS:           4,
		Refresh:       time.Second,
		LogsSource:    LogsSourceFile,
		LogsDir:       docker.DefaultLogsDir,
		LogTail:       docker.DefaultLogTail,
		SelectBy:      "index",
		QueueCapacity: 32,
	}
}

// Load 从命令行参数、环境变量和配置文件加载配置
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Default()

	// 配置文件路径必须先确定，它的值会成为环境变量和参数的默认值
	path, explicit := configPathFromArgs(args)
	if !explicit {
		if v, ok := env[envConfig]; ok && strings.TrimSpace(v) != "" {
			path, explicit = v, true
		} else {
			path = defaultPath(env)
		}
	}
	if err := loadFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}
	cfg.Path = path

	applyEnv(&cfg, env)

	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("cmtui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.StringVar(&cfg.Path, "config", cfg.Path, "path to the YAML config file")
	fs.StringVar(&cfg.Socket, "socket", cfg.Socket, "path to the daemon unix socket")
	fs.IntVar(&cfg.StopTimeout, "stop-timeout", cfg.StopTimeout, "grace period in seconds for stopping a container")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "path to the diagnostic log file (empty discards)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug-level diagnostic logging")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "interface language: en or zh")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frame rate of the UI loop (1-10)")
	fs.DurationVar(&cfg.Refresh, "refresh", cfg.Refresh, "container list refresh interval")
	fs.StringVar(&cfg.LogsSource, "logs-source", cfg.LogsSource, "log source: file or api")
	fs.StringVar(&cfg.LogsDir, "logs-dir", cfg.LogsDir, "root directory of json-file container logs")
	fs.IntVar(&cfg.LogTail, "log-tail", cfg.LogTail, "number of log lines to keep (0 keeps all)")
	fs.BoolVar(&cfg.AckMutations, "ack", cfg.AckMutations, "report successful start/stop/remove/create in the status line")
	fs.StringVar(&cfg.SelectBy, "select-by", cfg.SelectBy, "selection policy across refreshes: index or id")
	fs.IntVar(&cfg.QueueCapacity, "queue-capacity", cfg.QueueCapacity, "capacity of the command and result queues")
	return fs
}

// Usage 返回命令行帮助文本
func Usage() string {
	cfg := Default()
	fs := newFlagSet(&cfg)
	var b strings.Builder
	fs.SetOutput(&b)
	fmt.Fprintf(&b, "Usage: cmtui [flags]\n\n")
	fs.PrintDefaults()
	return b.String()
}

// configPathFromArgs 预扫描 -config / --config
func configPathFromArgs(args []string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v, true
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// defaultPath 返回 $XDG_CONFIG_HOME/cmtui/config.yaml
func defaultPath(env map[string]string) string {
	configDir := env["XDG_CONFIG_HOME"]
	if configDir == "" {
		if home := env["HOME"]; home != "" {
			configDir = filepath.Join(home, ".config")
		} else if dir, err := os.UserConfigDir(); err == nil {
			configDir = dir
		}
	}
	return filepath.Join(configDir, "cmtui", "config.yaml")
}

// loadFile 读取 YAML 配置文件。默认路径不存在时使用默认值，显式指定的文件必须存在。
func loadFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, env map[string]string) {
	cfg.Socket = envOrDefault(env, envSocket, cfg.Socket)
	cfg.StopTimeout = envOrInt(env, envStopTimeout, cfg.StopTimeout)
	cfg.LogFile = envOrDefault(env, envLogFile, cfg.LogFile)
	cfg.Debug = envOrBool(env, envDebug, cfg.Debug)
	cfg.Lang = envOrDefault(env, envLang, cfg.Lang)
	cfg.FPS = envOrInt(env, envFPS, cfg.FPS)
	cfg.Refresh = envOrDuration(env, envRefresh, cfg.Refresh)
	cfg.LogsSource = envOrDefault(env, envLogsSource, cfg.LogsSource)
	cfg.LogsDir = envOrDefault(env, envLogsDir, cfg.LogsDir)
	cfg.LogTail = envOrInt(env, envLogTail, cfg.LogTail)
	cfg.AckMutations = envOrBool(env, envAck, cfg.AckMutations)
	cfg.SelectBy = envOrDefault(env, envSelectBy, cfg.SelectBy)
	cfg.QueueCapacity = envOrInt(env, envQueueCapacity, cfg.QueueCapacity)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// ErrInvalid 配置取值超出范围
var ErrInvalid = errors.New("配置无效")

// Validate 检查取值范围
func Validate(cfg Config) error {
	if cfg.StopTimeout < 0 {
		return fmt.Errorf("%w: stop-timeout 不能为负数 (%d)", ErrInvalid, cfg.StopTimeout)
	}
	if cfg.FPS < 1 || cfg.FPS > 10 {
		return fmt.Errorf("%w: fps 必须在 1 到 10 之间 (%d)", ErrInvalid, cfg.FPS)
	}
	if cfg.Refresh <= 0 {
		return fmt.Errorf("%w: refresh 必须大于 0 (%s)", ErrInvalid, cfg.Refresh)
	}
	if cfg.LogTail < 0 {
		return fmt.Errorf("%w: log-tail 不能为负数 (%d)", ErrInvalid, cfg.LogTail)
	}
	if cfg.QueueCapacity < 1 {
		return fmt.Errorf("%w: queue-capacity 至少为 1 (%d)", ErrInvalid, cfg.QueueCapacity)
	}
	switch cfg.LogsSource {
	case LogsSourceFile, LogsSourceAPI:
	default:
		return fmt.Errorf("%w: 未知的 logs-source %q（可选 file 或 api）", ErrInvalid, cfg.LogsSource)
	}
	if _, err := state.ParseSelectionPolicy(cfg.SelectBy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SelectionPolicy 返回解析后的选择策略，调用前应已通过 Validate
func (c Config) SelectionPolicy() state.SelectionPolicy {
	p, _ := state.ParseSelectionPolicy(c.SelectBy)
	return p
}

// RefreshEvery 返回每隔多少帧刷新一次，至少为 1
func (c Config) RefreshEvery() int {
	if c.FPS <= 0 || c.Refresh <= 0 {
		return 1
	}
	frame := time.Second / time.Duration(c.FPS)
	n := int((c.Refresh + frame/2) / frame)
	if n < 1 {
		n = 1
	}
	return n
}
