package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(d *CreateDialog, s string) {
	for _, r := range s {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestCreateDialog_Submit(t *testing.T) {
	d := NewCreateDialog()
	d.Show()

	typeText(d, "web")
	d.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(d, "nginx")

	req, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if req == nil {
		t.Fatal("expected submission")
	}
	if req.Name != "web" || req.Image != "nginx" {
		t.Fatalf("unexpected request %+v", req)
	}
	if d.IsVisible() {
		t.Fatal("dialog should close after submit")
	}
}

func TestCreateDialog_RequiresImage(t *testing.T) {
	d := NewCreateDialog()
	d.Show()
	typeText(d, "web")

	if req, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter}); req != nil {
		t.Fatalf("expected no submission without image, got %+v", req)
	}
	if !d.IsVisible() || d.errMsg == "" {
		t.Fatal("dialog should stay open with an error")
	}
	if d.focus != 1 {
		t.Fatal("focus should move to the image field")
	}
}

func TestCreateDialog_Escape(t *testing.T) {
	d := NewCreateDialog()
	d.Show()
	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.IsVisible() {
		t.Fatal("esc should close the dialog")
	}
	if req, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter}); req != nil {
		t.Fatal("hidden dialog should ignore input")
	}
}
