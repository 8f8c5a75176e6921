package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"cmtui/internal/ui/styles"
)

// TableColumn 表格列定义
type TableColumn struct {
	Title string
	Width int
}

// TableRow 表格行数据（纯文本，样式由 StyleFunc 决定）
type TableRow []string

// TableStyles 表格样式
type TableStyles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
	Sort     lipgloss.Style
}

// DefaultTableStyles 默认表格样式
func DefaultTableStyles() TableStyles {
	return TableStyles{
		Header:   styles.TableHeaderStyle,
		Cell:     styles.TableCellStyle,
		Selected: styles.TableSelectedStyle,
		Border:   styles.TableBorderStyle,
		Sort:     styles.KeyStyle,
	}
}

// Table 只负责渲染：行、光标和排序列都由调用方在每帧设置
type Table struct {
	columns []TableColumn
	rows    []TableRow
	cursor  int // -1 表示没有选中
	sortCol int // -1 表示不显示排序标记
	width   int
	height  int
	styles  TableStyles

	// StyleFunc 为非选中行的单元格指定样式，nil 时使用 Cell 样式
	StyleFunc func(row, col int) lipgloss.Style
}

// NewTable 创建表格
func NewTable(columns []TableColumn) *Table {
	return &Table{
		columns: columns,
		cursor:  -1,
		sortCol: -1,
		width:   80,
		height:  10,
		styles:  DefaultTableStyles(),
	}
}

// SetColumns 设置列定义
func (t *Table) SetColumns(columns []TableColumn) {
	t.columns = columns
}

// SetRows 设置行数据
func (t *Table) SetRows(rows []TableRow) {
	t.rows = rows
}

// SetCursor 设置选中行，越界视为没有选中
func (t *Table) SetCursor(cursor int) {
	if cursor < 0 || cursor >= len(t.rows) {
		cursor = -1
	}
	t.cursor = cursor
}

// SetSortColumn 设置排序标记所在列
func (t *Table) SetSortColumn(col int) {
	t.sortCol = col
}

// SetSize 设置可见区域大小
func (t *Table) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// View 渲染表格：表头、分隔线、可见行
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(t.clip(t.renderHeader()))
	b.WriteString("\n")
	b.WriteString(t.clip(t.renderSeparator()))

	start, end := t.visibleRange()
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(t.clip(t.renderRow(i)))
	}

	return b.String()
}

// visibleRange 计算可见行区间，保证光标可见
func (t *Table) visibleRange() (int, int) {
	visibleRows := t.height - 2
	if visibleRows < 1 {
		visibleRows = 1
	}

	start := 0
	if t.cursor >= visibleRows {
		start = t.cursor - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(t.rows) {
		end = len(t.rows)
	}
	return start, end
}

func (t *Table) renderHeader() string {
	var header strings.Builder
	for i, col := range t.columns {
		title := col.Title
		if i == t.sortCol {
			title += " ▲"
		}
		header.WriteString(" ")
		header.WriteString(padOrTruncate(title, col.Width))
		header.WriteString(" ")
	}
	return t.styles.Header.Render(header.String())
}

func (t *Table) renderSeparator() string {
	var parts []string
	for _, col := range t.columns {
		parts = append(parts, strings.Repeat("─", col.Width+2))
	}
	return t.styles.Border.Render(strings.Join(parts, ""))
}

func (t *Table) renderRow(index int) string {
	if index < 0 || index >= len(t.rows) {
		return ""
	}

	row := t.rows[index]
	selected := index == t.cursor

	var line strings.Builder
	for i, col := range t.columns {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		cell := " " + padOrTruncate(value, col.Width) + " "
		if selected {
			line.WriteString(cell)
			continue
		}
		style := t.styles.Cell
		if t.StyleFunc != nil {
			style = t.StyleFunc(index, i)
		}
		line.WriteString(style.Render(cell))
	}

	if selected {
		return t.styles.Selected.Render(line.String())
	}
	return line.String()
}

// clip 按可见宽度裁剪整行
func (t *Table) clip(line string) string {
	if t.width <= 0 {
		return line
	}
	return ansi.Truncate(line, t.width, "")
}

// padOrTruncate 按显示宽度补齐或截断，宽字符按两列计算
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
