package state

import (
	"fmt"
	"slices"
	"strings"

	"cmtui/internal/docker"
)

// Unknown 缺失字段的占位文本
const Unknown = "unknown"

// Row 表格中的一行，由 Container 确定性地派生，每次刷新整体替换
type Row struct {
	ID        string
	Name      string
	Image     string
	Status    string
	Running   bool
	Malformed bool // 镜像或状态缺失，已用占位符代替
}

// RowFromContainer 把容器快照投影为表格行。
// 缺失的可选字段只影响本行，显示为 Unknown。
func RowFromContainer(c docker.Container) Row {
	row := Row{
		ID:   c.ID,
		Name: c.Name,
	}

	if c.Image != nil && c.Image.Name != "" {
		row.Image = c.Image.Name
	} else {
		row.Image = Unknown
		row.Malformed = true
	}

	if c.State != nil && c.State.Status != "" {
		row.Status = c.State.Status
		row.Running = c.State.Running
	} else {
		row.Status = Unknown
		row.Malformed = true
	}

	return row
}

// Column 可排序的列
type Column int

const (
	ColumnID Column = iota
	ColumnName
	ColumnImage
	ColumnStatus
)

// ColumnSpec 列定义：标题键、宽度、比较函数
type ColumnSpec struct {
	Key     string // i18n 键
	Width   int
	Compare func(a, b Row) int
}

var columnSpecs = []ColumnSpec{
	ColumnID:     {Key: "col_id", Width: 14, Compare: func(a, b Row) int { return strings.Compare(a.ID, b.ID) }},
	ColumnName:   {Key: "col_name", Width: 24, Compare: func(a, b Row) int { return strings.Compare(a.Name, b.Name) }},
	ColumnImage:  {Key: "col_image", Width: 28, Compare: func(a, b Row) int { return strings.Compare(a.Image, b.Image) }},
	ColumnStatus: {Key: "col_status", Width: 12, Compare: compareStatus},
}

// compareStatus 运行中的排在前面，其余按文本
func compareStatus(a, b Row) int {
	if a.Running != b.Running {
		if a.Running {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Status, b.Status)
}

// Columns 返回全部列定义，顺序即显示顺序
func Columns() []ColumnSpec {
	return slices.Clone(columnSpecs)
}

// Spec 返回列定义
func (c Column) Spec() ColumnSpec {
	if c < 0 || int(c) >= len(columnSpecs) {
		return columnSpecs[ColumnID]
	}
	return columnSpecs[c]
}

// Next 循环到下一列
func (c Column) Next() Column {
	return Column((int(c) + 1) % len(columnSpecs))
}

// SelectionPolicy 刷新后如何恢复选中行
type SelectionPolicy int

const (
	// SelectByIndex 保留原索引 k（k < 新行数），否则清除
	SelectByIndex SelectionPolicy = iota
	// SelectByIdentity 优先跟随原容器 ID，找不到时退回按索引
	SelectByIdentity
)

// String 返回策略名称
func (p SelectionPolicy) String() string {
	switch p {
	case SelectByIdentity:
		return "id"
	default:
		return "index"
	}
}

// ParseSelectionPolicy 解析 "index" 或 "id"
func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "index":
		return SelectByIndex, nil
	case "id", "identity":
		return SelectByIdentity, nil
	default:
		return SelectByIndex, fmt.Errorf("未知的选择策略: %q", s)
	}
}

// Table 最近一次已知的行、排序和选中状态。
// 只在 UI 线程中使用，不加锁。
type Table struct {
	rows     []Row
	selected int // -1 表示没有选中
	policy   SelectionPolicy
	sortBy   Column
}

// NewTable 创建空表，默认按 ID 升序
func NewTable(policy SelectionPolicy) *Table {
	return &Table{
		selected: -1,
		policy:   policy,
		sortBy:   ColumnID,
	}
}

// Replace 用新快照替换全部行，并按策略恢复选中
func (t *Table) Replace(containers []docker.Container) {
	rows := make([]Row, 0, len(containers))
	for _, c := range containers {
		rows = append(rows, RowFromContainer(c))
	}
	t.sortRows(rows)

	prevIndex := t.selected
	prevID := ""
	if row, ok := t.Selected(); ok {
		prevID = row.ID
	}

	t.rows = rows
	t.selected = -1

	if prevIndex < 0 {
		return
	}
	if t.policy == SelectByIdentity && prevID != "" {
		if idx := t.indexOf(prevID); idx >= 0 {
			t.selected = idx
			return
		}
	}
	if prevIndex < len(t.rows) {
		t.selected = prevIndex
	}
}

func (t *Table) sortRows(rows []Row) {
	cmp := t.sortBy.Spec().Compare
	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := cmp(a, b); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func (t *Table) indexOf(id string) int {
	for i, row := range t.rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Rows 返回当前行，调用方不得修改
func (t *Table) Rows() []Row {
	return t.rows
}

// Len 行数
func (t *Table) Len() int {
	return len(t.rows)
}

// Policy 当前选择策略
func (t *Table) Policy() SelectionPolicy {
	return t.policy
}

// SelectedIndex 返回选中索引
func (t *Table) SelectedIndex() (int, bool) {
	if t.selected < 0 || t.selected >= len(t.rows) {
		return -1, false
	}
	return t.selected, true
}

// Selected 返回选中的行
func (t *Table) Selected() (Row, bool) {
	idx, ok := t.SelectedIndex()
	if !ok {
		return Row{}, false
	}
	return t.rows[idx], true
}

// Select 选中第 i 行，越界返回 false 且不改变选中
func (t *Table) Select(i int) bool {
	if i < 0 || i >= len(t.rows) {
		return false
	}
	t.selected = i
	return true
}

// ClearSelection 清除选中
func (t *Table) ClearSelection() {
	t.selected = -1
}

// MoveUp 上移；没有选中时选中第一行
func (t *Table) MoveUp() {
	if len(t.rows) == 0 {
		return
	}
	if t.selected <= 0 {
		t.selected = 0
		return
	}
	t.selected--
}

// MoveDown 下移；没有选中时选中第一行
func (t *Table) MoveDown() {
	if len(t.rows) == 0 {
		return
	}
	if t.selected < 0 {
		t.selected = 0
		return
	}
	if t.selected < len(t.rows)-1 {
		t.selected++
	}
}

// Home 跳到第一行
func (t *Table) Home() {
	t.Select(0)
}

// End 跳到最后一行
func (t *Table) End() {
	t.Select(len(t.rows) - 1)
}

// SortColumn 当前排序列
func (t *Table) SortColumn() Column {
	return t.sortBy
}

// SortBy 切换排序列并立即重排，选中跟随原来的行
func (t *Table) SortBy(c Column) {
	if c < 0 || int(c) >= len(columnSpecs) {
		c = ColumnID
	}
	t.sortBy = c
	prevID := ""
	if row, ok := t.Selected(); ok {
		prevID = row.ID
	}
	t.sortRows(t.rows)
	if prevID != "" {
		t.selected = t.indexOf(prevID)
	}
}

// CycleSort 切换到下一个排序列
func (t *Table) CycleSort() Column {
	t.SortBy(t.sortBy.Next())
	return t.sortBy
}
