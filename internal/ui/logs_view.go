package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	units "github.com/docker/go-units"

	"cmtui/internal/backend"
	"cmtui/internal/i18n"
	"cmtui/internal/ui/components"
	"cmtui/internal/ui/styles"
)

// LogsView 日志模态视图，内容是一次性快照，不跟随
type LogsView struct {
	viewport viewport.Model

	containerID   string
	containerName string
	available     bool
	size          int

	width  int
	height int
}

// NewLogsView 创建日志视图
func NewLogsView() *LogsView {
	return &LogsView{viewport: viewport.New(80, 20)}
}

// SetLogs 装入一次日志结果并滚动到底部
func (v *LogsView) SetLogs(lt backend.LogText, name string) {
	v.containerID = lt.ContainerID
	v.containerName = name
	v.available = lt.Available
	v.size = len(lt.Text)

	switch {
	case !lt.Available:
		// 不展示原始错误，只给固定提示
		v.viewport.SetContent(styles.WarningStyle.Render(i18n.T("logs_unavailable")))
	case strings.TrimSpace(lt.Text) == "":
		v.viewport.SetContent(styles.MutedStyle.Render(i18n.T("logs_empty")))
	default:
		v.viewport.SetContent(lt.Text)
	}
	v.viewport.GotoBottom()
}

// SetSize 设置视图尺寸
func (v *LogsView) SetSize(width, height int) {
	v.width = width
	v.height = height

	// 信息行 1 行，边框 2 行（标题在上边框中）
	vpHeight := height - 3
	if vpHeight < 3 {
		vpHeight = 3
	}
	vpWidth := width - 4
	if vpWidth < 20 {
		vpWidth = 20
	}
	v.viewport.Width = vpWidth
	v.viewport.Height = vpHeight
}

// Update 滚动
func (v *LogsView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View 渲染日志视图
func (v *LogsView) View() string {
	name := v.containerName
	if name == "" {
		name = shortID(v.containerID)
	}

	info := styles.MutedStyle.Render(shortID(v.containerID))
	if v.available {
		info += styles.MutedStyle.Render(fmt.Sprintf("  %s  %3.f%%",
			units.HumanSize(float64(v.size)), v.viewport.ScrollPercent()*100))
	}

	box := components.WrapInBox(i18n.T("logs_title")+" · "+name, v.viewport.View(), v.viewport.Width+2, !v.available)
	return info + "\n" + box
}

// shortID 容器 ID 的前 12 位
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
