package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayCentered 将弹出内容居中叠加到基础内容上
// screenHeight 为 0 时使用 baseContent 的行数
func OverlayCentered(baseContent, overlayContent string, screenWidth, screenHeight int) string {
	if overlayContent == "" {
		return baseContent
	}

	baseLines := strings.Split(baseContent, "\n")
	overlayLines := strings.Split(overlayContent, "\n")

	totalHeight := screenHeight
	if totalHeight <= 0 {
		totalHeight = len(baseLines)
	}
	for len(baseLines) < totalHeight {
		baseLines = append(baseLines, "")
	}

	overlayWidth := lipgloss.Width(overlayContent)
	top := 0
	if totalHeight > len(overlayLines) {
		top = (totalHeight - len(overlayLines)) / 2
	}
	left := 0
	if screenWidth > overlayWidth {
		left = (screenWidth - overlayWidth) / 2
	}

	for i, line := range overlayLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		// 保留弹窗左侧的背景，宽度不足时补空格
		prefix := ansi.Truncate(baseLines[row], left, "")
		if w := ansi.StringWidth(prefix); w < left {
			prefix += strings.Repeat(" ", left-w)
		}
		baseLines[row] = prefix + "\x1b[0m" + line
	}

	return strings.Join(baseLines, "\n")
}
