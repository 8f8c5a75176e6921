package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"cmtui/internal/ui/styles"
)

// WrapInBox 用圆角边框包裹内容，标题嵌在上边框中。
// warn 为 true 时边框改用警告色。
func WrapInBox(title, content string, width int, warn bool) string {
	color := lipgloss.Color(styles.ColorBorder)
	if warn {
		color = lipgloss.Color(styles.ColorWarning)
	}

	body := styles.BoxStyle.
		BorderForeground(color).
		BorderTop(false).
		Width(width).
		Render(content)

	border := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(color)

	// 上边框: ╭─ 标题 ───╮
	inner := lipgloss.Width(body) - 2
	maxTitle := inner - 4
	if maxTitle < 0 {
		maxTitle = 0
	}
	title = ansi.Truncate(title, maxTitle, "…")
	fill := inner - 3 - ansi.StringWidth(title)
	if fill < 0 {
		fill = 0
	}

	top := edge.Render(border.TopLeft+border.Top+" ") +
		styles.TitleStyle.Render(title) +
		edge.Render(" "+strings.Repeat(border.Top, fill)+border.TopRight)

	return top + "\n" + body
}
