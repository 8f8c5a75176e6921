package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"cmtui/internal/backend"
	"cmtui/internal/i18n"
	"cmtui/internal/logging"
	"cmtui/internal/ui/components"
	"cmtui/internal/ui/state"
)

// ErrBackendClosed 结果队列在 UI 运行期间被关闭
var ErrBackendClosed = errors.New("后台 Worker 意外停止")

// 状态栏消息的显示时间
const statusTTL = 3 * time.Second

// Options UI 配置
type Options struct {
	FPS          int                   // 帧率
	RefreshEvery int                   // 每隔多少帧提交一次 ListContainers
	StopTimeout  int                   // 停止容器的优雅等待时间（秒）
	Policy       state.SelectionPolicy // 刷新后的选中策略
}

// Model 是 TUI 的主模型。
// 与 Worker 之间只通过两个队列通信：发送和接收都是非阻塞的。
type Model struct {
	commands chan<- backend.Command
	results  <-chan backend.Result
	opts     Options
	log      *logrus.Entry

	// 子视图（指针，Update 返回的副本共享同一份状态）
	table  *state.Table
	view   *components.Table
	logs   *LogsView
	create *components.CreateDialog
	help   help.Model

	keys     components.KeyMap
	logsKeys components.LogsKeyMap

	mode        Mode
	pendingLogs string // 等待日志结果的容器 ID
	pendingName string
	showHelp    bool

	frame       int
	lastRefresh time.Time
	dropped     int
	status      statusMessage

	err error // 致命错误，程序退出后由调用方读取

	width  int
	height int
}

// NewModel 创建主模型
func NewModel(commands chan<- backend.Command, results <-chan backend.Result, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 4
	}
	if opts.RefreshEvery <= 0 {
		opts.RefreshEvery = opts.FPS
	}

	return Model{
		commands: commands,
		results:  results,
		opts:     opts,
		log:      logging.For("ui"),
		table:    state.NewTable(opts.Policy),
		view:     components.NewTable(nil),
		logs:     NewLogsView(),
		create:   components.NewCreateDialog(),
		help:     help.New(),
		keys:     components.DefaultKeyMap(),
		logsKeys: components.DefaultLogsKeyMap(),
		mode:     ModeBrowsing,
	}
}

// Err 返回导致退出的致命错误
func (m Model) Err() error {
	return m.err
}

// Mode 当前状态
func (m Model) Mode() Mode {
	return m.mode
}

// Table 返回表格状态
func (m Model) Table() *state.Table {
	return m.table
}

// Dropped 因队列已满而丢弃的命令数
func (m Model) Dropped() int {
	return m.dropped
}

func (m Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.opts.FPS)
}

// Init 启动帧时钟
func (m Model) Init() tea.Cmd {
	return frameTick(m.frameInterval())
}

// Update 处理消息
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logs.SetSize(msg.Width, msg.Height-2)
		m.create.SetWidth(msg.Width)
		return m, nil

	case frameMsg:
		return m.onFrame(time.Time(msg))

	case tea.KeyMsg:
		// ctrl+c 在任何状态下都退出
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.create.IsVisible() {
			return m.handleCreateKeys(msg)
		}
		if m.mode == ModeViewingLogs {
			return m.handleLogsKeys(msg)
		}
		return m.handleBrowsingKeys(msg)
	}

	return m, nil
}

// onFrame 每帧：按需提交刷新，最多消费一个结果
func (m Model) onFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.frame%m.opts.RefreshEvery == 0 {
		m.submit(backend.ListContainers{})
	}
	m.frame++

	result, ok, closed := backend.TryReceive(m.results)
	if closed {
		m.err = ErrBackendClosed
		m.log.Error("result queue closed, quitting")
		return m, tea.Quit
	}
	if ok {
		m.apply(result, now)
	}

	if m.status.text != "" && now.After(m.status.expire) {
		m.status = statusMessage{}
	}

	return m, frameTick(m.frameInterval())
}

// apply 把一个结果应用到状态
func (m *Model) apply(r backend.Result, now time.Time) {
	switch r := r.(type) {
	case backend.ContainerList:
		m.table.Replace(r.Containers)
		m.lastRefresh = now

	case backend.LogText:
		// 只接受当前等待的那次请求，其余丢弃
		if m.mode != ModeBrowsing || r.ContainerID != m.pendingLogs {
			return
		}
		m.logs.SetLogs(r, m.pendingName)
		m.pendingLogs = ""
		m.pendingName = ""
		m.mode = ModeViewingLogs

	case backend.Ack:
		m.setStatus(MsgSuccess, fmt.Sprintf("%s %s: %s", i18n.T(r.Op.String()), i18n.T("ack_done"), shortID(r.ContainerID)), now)
	}
}

// submit 尽力发送命令，队列满时丢弃并计数
func (m *Model) submit(cmd backend.Command) bool {
	if backend.BestEffortSend(m.commands, cmd) {
		return true
	}
	m.dropped++
	m.log.WithFields(logrus.Fields{
		"op":      cmd.Kind().String(),
		"target":  cmd.Target(),
		"dropped": m.dropped,
	}).Warn("command queue full, dropping command")
	return false
}

// submitForSelected 对选中的容器提交命令
func (m *Model) submitForSelected(build func(row state.Row) backend.Command) bool {
	row, ok := m.table.Selected()
	if !ok {
		m.setStatus(MsgWarning, i18n.T("select_first"), time.Now())
		return false
	}
	cmd := build(row)
	if !m.submit(cmd) {
		m.setStatus(MsgWarning, fmt.Sprintf("%s: %s", i18n.T("dropped"), i18n.T(cmd.Kind().String())), time.Now())
		return false
	}
	m.setStatus(MsgInfo, fmt.Sprintf("%s: %s %s", i18n.T("queued"), i18n.T(cmd.Kind().String()), shortID(row.ID)), time.Now())
	return true
}

func (m *Model) setStatus(kind MessageType, text string, now time.Time) {
	m.status = statusMessage{kind: kind, text: text, expire: now.Add(statusTTL)}
}

func (m Model) handleBrowsingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.ToggleLang):
		i18n.ToggleLanguage()
		m.keys = components.DefaultKeyMap()
		m.logsKeys = components.DefaultLogsKeyMap()

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown()
	case key.Matches(msg, m.keys.Home):
		m.table.Home()
	case key.Matches(msg, m.keys.End):
		m.table.End()

	case key.Matches(msg, m.keys.Start):
		m.submitForSelected(func(row state.Row) backend.Command {
			return backend.StartContainer{ID: row.ID}
		})
	case key.Matches(msg, m.keys.Stop):
		m.submitForSelected(func(row state.Row) backend.Command {
			return backend.StopContainer{ID: row.ID, TimeoutSeconds: m.opts.StopTimeout}
		})
	case key.Matches(msg, m.keys.Remove):
		m.submitForSelected(func(row state.Row) backend.Command {
			return backend.RemoveContainer{ID: row.ID}
		})
	case key.Matches(msg, m.keys.ForceRemove):
		m.submitForSelected(func(row state.Row) backend.Command {
			return backend.RemoveContainer{ID: row.ID, Force: true}
		})
	case key.Matches(msg, m.keys.Logs):
		sent := m.submitForSelected(func(row state.Row) backend.Command {
			m.pendingLogs = row.ID
			m.pendingName = row.Name
			return backend.GetLogs{ID: row.ID}
		})
		if !sent {
			m.pendingLogs, m.pendingName = "", ""
		}

	case key.Matches(msg, m.keys.Create):
		m.create.Show()

	case key.Matches(msg, m.keys.Sort):
		m.table.CycleSort()

	case key.Matches(msg, m.keys.Refresh):
		m.submit(backend.ListContainers{})
	}

	return m, nil
}

func (m Model) handleLogsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.logsKeys.Back) {
		m.mode = ModeBrowsing
		return m, nil
	}
	return m, m.logs.Update(msg)
}

func (m Model) handleCreateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	req, cmd := m.create.Update(msg)
	if req != nil {
		create := backend.CreateContainer{Name: req.Name, Image: req.Image}
		if m.submit(create) {
			m.setStatus(MsgInfo, fmt.Sprintf("%s: %s %s", i18n.T("queued"), i18n.T("create"), req.Image), time.Now())
		}
	}
	return m, cmd
}
