package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	units "github.com/docker/go-units"

	"cmtui/internal/i18n"
	"cmtui/internal/ui/components"
	"cmtui/internal/ui/state"
	"cmtui/internal/ui/styles"
)

// View 渲染当前状态
func (m Model) View() string {
	if m.width == 0 {
		return i18n.T("loading")
	}

	var content string
	if m.mode == ModeViewingLogs {
		content = m.logs.View() + "\n" + m.help.View(m.logsKeys)
	} else {
		content = m.browsingView()
	}

	if m.create.IsVisible() {
		content = components.OverlayCentered(content, m.create.View(), m.width, m.height)
	}
	return content
}

func (m Model) browsingView() string {
	header := m.renderHeader()
	status := m.renderStatusBar()
	helpView := m.help.View(m.keys)

	// 表格占用剩余高度
	used := lipgloss.Height(header) + lipgloss.Height(status) + lipgloss.Height(helpView)
	tableHeight := m.height - used
	if tableHeight < 3 {
		tableHeight = 3
	}

	var body string
	if m.table.Len() == 0 {
		body = styles.MutedStyle.Render("  " + i18n.T("no_containers"))
		if pad := tableHeight - 1; pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	} else {
		m.syncTable(tableHeight)
		body = m.view.View()
		if pad := tableHeight - lipgloss.Height(body); pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, helpView)
}

// syncTable 把表格状态投影到渲染组件
func (m Model) syncTable(height int) {
	specs := state.Columns()
	columns := make([]components.TableColumn, len(specs))
	for i, spec := range specs {
		columns[i] = components.TableColumn{Title: i18n.T(spec.Key), Width: spec.Width}
	}

	rows := m.table.Rows()
	tableRows := make([]components.TableRow, len(rows))
	for i, row := range rows {
		tableRows[i] = components.TableRow{shortID(row.ID), row.Name, row.Image, row.Status}
	}

	m.view.SetColumns(columns)
	m.view.SetRows(tableRows)
	m.view.SetSize(m.width, height)
	m.view.SetSortColumn(int(m.table.SortColumn()))
	if idx, ok := m.table.SelectedIndex(); ok {
		m.view.SetCursor(idx)
	} else {
		m.view.SetCursor(-1)
	}
	m.view.StyleFunc = func(r, c int) lipgloss.Style {
		row := rows[r]
		switch {
		case c == int(state.ColumnStatus):
			return styles.StatusStyle(row.Status, row.Running)
		case c == int(state.ColumnImage) && row.Image == state.Unknown:
			return styles.UnknownStyle
		default:
			return styles.TableCellStyle
		}
	}
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render(i18n.T("app_title"))
	count := styles.MutedStyle.Render(fmt.Sprintf("(%d)", m.table.Len()))
	sortSpec := m.table.SortColumn().Spec()
	sortInfo := styles.MutedStyle.Render(fmt.Sprintf("%s: %s", i18n.T("sorted_by"), i18n.T(sortSpec.Key)))
	lang := styles.KeyStyle.Render("[" + i18n.GetLanguageDisplay() + "]")

	return fmt.Sprintf("%s %s  %s  %s", title, count, sortInfo, lang)
}

func (m Model) renderStatusBar() string {
	var parts []string

	if m.lastRefresh.IsZero() {
		parts = append(parts, styles.MutedStyle.Render(i18n.T("never_refreshed")))
	} else {
		age := units.HumanDuration(time.Since(m.lastRefresh))
		parts = append(parts, styles.MutedStyle.Render(fmt.Sprintf(i18n.T("last_refresh"), age)))
	}

	if malformed := m.malformedCount(); malformed > 0 {
		parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("%s: %d", i18n.T("rows_malformed"), malformed)))
	}

	if m.dropped > 0 {
		parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("%s: %d", i18n.T("dropped"), m.dropped)))
	}

	if m.pendingLogs != "" {
		parts = append(parts, styles.MutedStyle.Render(i18n.T("loading_logs")))
	}

	if m.status.text != "" {
		switch m.status.kind {
		case MsgSuccess:
			parts = append(parts, styles.SuccessStyle.Render(m.status.text))
		case MsgWarning:
			parts = append(parts, styles.WarningStyle.Render(m.status.text))
		default:
			parts = append(parts, styles.StatusBarValueStyle.Render(m.status.text))
		}
	}

	return strings.Join(parts, styles.MutedStyle.Render(" │ "))
}

func (m Model) malformedCount() int {
	n := 0
	for _, row := range m.table.Rows() {
		if row.Malformed {
			n++
		}
	}
	return n
}
