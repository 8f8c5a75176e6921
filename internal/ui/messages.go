package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode UI 当前所处的状态
type Mode int

const (
	// ModeBrowsing 浏览容器列表
	ModeBrowsing Mode = iota
	// ModeViewingLogs 查看某个容器的日志，只能通过 esc/q 返回
	ModeViewingLogs
)

// frameMsg 固定帧率的时钟
type frameMsg time.Time

func frameTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// MessageType 状态栏消息类型
type MessageType int

const (
	MsgInfo MessageType = iota
	MsgSuccess
	MsgWarning
)

// statusMessage 状态栏上的临时消息，过期后在下一帧清除
type statusMessage struct {
	kind   MessageType
	text   string
	expire time.Time
}
