package components

import (
	"github.com/charmbracelet/bubbles/key"

	"cmtui/internal/i18n"
)

// KeyMap 容器列表的快捷键映射（使用 bubbles/key 管理）
type KeyMap struct {
	// 全局快捷键
	Quit       key.Binding
	Help       key.Binding
	ToggleLang key.Binding

	// 导航快捷键
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// 容器操作
	Start       key.Binding
	Stop        key.Binding
	Remove      key.Binding
	ForceRemove key.Binding
	Logs        key.Binding
	Create      key.Binding
	Sort        key.Binding
	Refresh     key.Binding
}

// DefaultKeyMap 返回默认的快捷键映射，帮助文本取当前语言
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", i18n.T("quit")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("help")),
		),
		ToggleLang: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", i18n.T("toggle_lang")),
		),

		// 导航快捷键（vim 风格）
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("up_down")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("up_down")),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/G", i18n.T("home_end")),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", i18n.T("home_end")),
		),

		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", i18n.T("start")),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", i18n.T("stop")),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", i18n.T("remove")),
		),
		ForceRemove: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", i18n.T("force_remove")),
		),
		Logs: key.NewBinding(
			key.WithKeys("l", "enter"),
			key.WithHelp("l/enter", i18n.T("logs")),
		),
		Create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", i18n.T("create")),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", i18n.T("sort")),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", i18n.T("refresh")),
		),
	}
}

// ShortHelp 返回简短的帮助信息（用于底部状态栏）
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Remove, k.Logs, k.Help, k.Quit}
}

// FullHelp 返回完整的帮助信息（用于帮助面板）
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home},                     // 导航
		{k.Start, k.Stop, k.Remove, k.ForceRemove}, // 操作
		{k.Logs, k.Create, k.Sort, k.Refresh},      // 其他
		{k.ToggleLang, k.Help, k.Quit},
	}
}

// LogsKeyMap 日志视图的快捷键
type LogsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Back     key.Binding
}

// DefaultLogsKeyMap 返回日志视图的快捷键映射
func DefaultLogsKeyMap() LogsKeyMap {
	return LogsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/↓", i18n.T("up_down")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup/pgdn", i18n.T("page")),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", i18n.T("esc_back")),
		),
	}
}

// ShortHelp 返回简短的帮助信息
func (k LogsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.PageUp, k.Back}
}

// FullHelp 返回完整的帮助信息
func (k LogsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.PageUp, k.Back}}
}
