// Package styles 定义全局统一的 UI 样式
package styles

import "github.com/charmbracelet/lipgloss"

// 颜色常量
const (
	ColorPrimary   = "220" // 黄色 - 标题、高亮
	ColorSecondary = "81"  // 蓝色 - 键名、标签
	ColorSuccess   = "82"  // 绿色 - 成功、运行中
	ColorError     = "196" // 红色 - 错误
	ColorWarning   = "214" // 橙色 - 警告、占位
	ColorMuted     = "245" // 灰色 - 次要信息、提示
	ColorText      = "252" // 白色 - 正常文本
	ColorBorder    = "240" // 深灰 - 边框
)

// ========== 通用基础样式 ==========

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimary)).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted))

	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondary))

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted))
)

// 消息样式
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)
)

// ========== 容器状态样式 ==========

var (
	RunningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	StoppedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted))

	// UnknownStyle 缺失字段的占位符
	UnknownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Italic(true)
)

// ========== 表格样式 ==========

var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorPrimary))

	TableCellStyle = lipgloss.NewStyle()

	TableSelectedStyle = lipgloss.NewStyle().
				Reverse(true).
				Bold(true)

	TableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorBorder))
)

// ========== 边框/对话框样式 ==========

var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorSecondary)).
			Padding(1, 2)
)

// ========== 表单样式 ==========

var (
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondary)).
			Width(10)

	FormInputActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPrimary)).
				Bold(true)

	FormErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))
)

// ========== 状态栏样式 ==========

var (
	StatusBarValueStyle = lipgloss.NewStyle()
)

// StatusStyle 根据容器状态选择颜色
func StatusStyle(status string, running bool) lipgloss.Style {
	switch {
	case running:
		return RunningStyle
	case status == "unknown":
		return UnknownStyle
	default:
		return StoppedStyle
	}
}
