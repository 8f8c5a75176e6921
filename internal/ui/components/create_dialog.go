package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cmtui/internal/i18n"
	"cmtui/internal/ui/styles"
)

// CreateDialog 创建容器的输入框：名称（可选）和镜像（必填）
type CreateDialog struct {
	name    textinput.Model
	image   textinput.Model
	focus   int // 0 名称，1 镜像
	visible bool
	errMsg  string
	width   int
}

// CreateRequest 对话框提交的内容
type CreateRequest struct {
	Name  string
	Image string
}

// NewCreateDialog 创建对话框
func NewCreateDialog() *CreateDialog {
	name := textinput.New()
	name.Placeholder = "web"
	name.CharLimit = 64
	name.Width = 40
	name.Prompt = ""

	image := textinput.New()
	image.Placeholder = "nginx:latest"
	image.CharLimit = 128
	image.Width = 40
	image.Prompt = ""

	return &CreateDialog{
		name:  name,
		image: image,
		width: 80,
	}
}

// Show 显示对话框并清空输入
func (d *CreateDialog) Show() {
	d.visible = true
	d.errMsg = ""
	d.name.SetValue("")
	d.image.SetValue("")
	d.setFocus(0)
}

// Hide 隐藏对话框
func (d *CreateDialog) Hide() {
	d.visible = false
	d.name.Blur()
	d.image.Blur()
}

// IsVisible 是否可见
func (d *CreateDialog) IsVisible() bool {
	return d.visible
}

// SetWidth 设置宽度
func (d *CreateDialog) SetWidth(width int) {
	d.width = width
	inputWidth := width - 30
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 50 {
		inputWidth = 50
	}
	d.name.Width = inputWidth
	d.image.Width = inputWidth
}

func (d *CreateDialog) setFocus(i int) {
	d.focus = i
	if i == 0 {
		d.name.Focus()
		d.image.Blur()
	} else {
		d.image.Focus()
		d.name.Blur()
	}
}

// Update 处理输入。submitted 非 nil 表示用户确认创建，对话框随即关闭。
func (d *CreateDialog) Update(msg tea.Msg) (submitted *CreateRequest, cmd tea.Cmd) {
	if !d.visible {
		return nil, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			d.Hide()
			return nil, nil
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			d.setFocus(1 - d.focus)
			return nil, nil
		case tea.KeyEnter:
			req := CreateRequest{
				Name:  strings.TrimSpace(d.name.Value()),
				Image: strings.TrimSpace(d.image.Value()),
			}
			if req.Image == "" {
				d.errMsg = i18n.T("image_required")
				d.setFocus(1)
				return nil, nil
			}
			d.Hide()
			return &req, nil
		}
	}

	if d.focus == 0 {
		d.name, cmd = d.name.Update(msg)
	} else {
		d.image, cmd = d.image.Update(msg)
	}
	return nil, cmd
}

// View 渲染对话框
func (d *CreateDialog) View() string {
	if !d.visible {
		return ""
	}

	label := func(i int, text string) string {
		if d.focus == i {
			return styles.FormInputActiveStyle.Width(10).Render(text)
		}
		return styles.FormLabelStyle.Render(text)
	}

	parts := []string{
		styles.TitleStyle.Render(i18n.T("create_title")),
		"",
		label(0, i18n.T("create_name")) + d.name.View(),
		label(1, i18n.T("create_image")) + d.image.View(),
	}
	if d.errMsg != "" {
		parts = append(parts, "", styles.FormErrorStyle.Render(d.errMsg))
	}
	parts = append(parts, "", styles.HintStyle.Render(i18n.T("create_hint")))

	boxWidth := d.width - 10
	if boxWidth < 40 {
		boxWidth = 40
	}
	if boxWidth > 70 {
		boxWidth = 70
	}

	return styles.DialogStyle.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
