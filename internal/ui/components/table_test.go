package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPadOrTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abc…"},
		{"abcd", 4, "abcd"},
		{"容器", 6, "容器  "},
		{"x", 0, ""},
	}
	for _, c := range cases {
		if got := padOrTruncate(c.in, c.width); got != c.want {
			t.Errorf("padOrTruncate(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestTableView(t *testing.T) {
	tbl := NewTable([]TableColumn{{Title: "ID", Width: 4}, {Title: "NAME", Width: 6}})
	tbl.SetSize(80, 10)
	tbl.SetRows([]TableRow{{"a1", "web"}, {"b2", "a-very-long-name"}})
	tbl.SetSortColumn(0)
	tbl.SetCursor(1)

	out := ansi.Strip(tbl.View())
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "ID ▲") {
		t.Errorf("expected sort marker in header, got %q", lines[0])
	}
	if !strings.Contains(lines[3], "a-ver…") {
		t.Errorf("expected truncated name, got %q", lines[3])
	}
}

func TestTableScrollsToCursor(t *testing.T) {
	tbl := NewTable([]TableColumn{{Title: "ID", Width: 4}})
	rows := make([]TableRow, 10)
	for i := range rows {
		rows[i] = TableRow{string(rune('a' + i))}
	}
	tbl.SetRows(rows)
	tbl.SetSize(40, 5) // 3 行可见
	tbl.SetCursor(9)

	out := ansi.Strip(tbl.View())
	if !strings.Contains(out, " j ") || strings.Contains(out, " a ") {
		t.Fatalf("expected window to end at cursor, got:\n%s", out)
	}
}

func TestTableCursorOutOfRange(t *testing.T) {
	tbl := NewTable([]TableColumn{{Title: "ID", Width: 4}})
	tbl.SetRows([]TableRow{{"a"}})
	tbl.SetCursor(3)
	if tbl.cursor != -1 {
		t.Fatalf("expected no cursor, got %d", tbl.cursor)
	}
}
