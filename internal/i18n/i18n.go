package i18n

import (
	"os"
	"strings"
)

// Language type
type Language string

const (
	EN Language = "en"
	ZH Language = "zh"
)

var current = EN

// Messages all text messages
type Messages struct {
	// Common
	AppTitle string
	Loading  string
	Refresh  string
	Quit     string
	Help     string
	Cancel   string
	Confirm  string
	Unknown  string

	// Columns
	ColID     string
	ColName   string
	ColImage  string
	ColStatus string

	// Container operations
	Start       string
	Stop        string
	Remove      string
	ForceRemove string
	Logs        string
	Create      string
	Sort        string

	// Logs view
	LogsTitle       string
	LogsUnavailable string
	LogsEmpty       string
	LoadingLogs     string
	ScrollHint      string

	// Create dialog
	CreateTitle   string
	CreateName    string
	CreateImage   string
	CreateHint    string
	ImageRequired string

	// Status line
	Queued        string
	Dropped       string
	AckDone       string
	LastRefresh   string
	NeverRefresh  string
	SortedBy      string
	NoContainers  string
	SelectFirst   string
	RowsMalformed string

	// Hints for keys
	UpDown      string
	HomeEnd     string
	Page        string
	EscBack     string
	ToggleLang  string
	SwitchField string

	// Fatal errors
	FatalError       string
	BackendClosed    string
	NotATerminal     string
	PermissionDenied string
	ConnectionFailed string
	ConfigError      string
}

var messages = map[Language]*Messages{
	EN: enMessages,
	ZH: zhMessages,
}

// SetLanguage set current language
func SetLanguage(lang Language) {
	if _, ok := messages[lang]; ok {
		current = lang
	}
}

// GetLanguage get current language
func GetLanguage() Language {
	return current
}

// ToggleLanguage toggle between EN and ZH
func ToggleLanguage() Language {
	if current == EN {
		current = ZH
	} else {
		current = EN
	}
	return current
}

// GetLanguageDisplay get display name for current language
func GetLanguageDisplay() string {
	if current == ZH {
		return "中文"
	}
	return "EN"
}

// T get translated text
func T(key string) string {
	m := messages[current]
	if m == nil {
		m = messages[EN]
	}

	switch key {
	// Common
	case "app_title":
		return m.AppTitle
	case "loading":
		return m.Loading
	case "refresh":
		return m.Refresh
	case "quit":
		return m.Quit
	case "help":
		return m.Help
	case "cancel":
		return m.Cancel
	case "confirm":
		return m.Confirm
	case "unknown":
		return m.Unknown

	// Columns
	case "col_id":
		return m.ColID
	case "col_name":
		return m.ColName
	case "col_image":
		return m.ColImage
	case "col_status":
		return m.ColStatus

	// Container operations
	case "start":
		return m.Start
	case "stop":
		return m.Stop
	case "remove":
		return m.Remove
	case "force_remove":
		return m.ForceRemove
	case "logs":
		return m.Logs
	case "create":
		return m.Create
	case "sort":
		return m.Sort

	// Logs
	case "logs_title":
		return m.LogsTitle
	case "logs_unavailable":
		return m.LogsUnavailable
	case "logs_empty":
		return m.LogsEmpty
	case "loading_logs":
		return m.LoadingLogs
	case "scroll_hint":
		return m.ScrollHint

	// Create dialog
	case "create_title":
		return m.CreateTitle
	case "create_name":
		return m.CreateName
	case "create_image":
		return m.CreateImage
	case "create_hint":
		return m.CreateHint
	case "image_required":
		return m.ImageRequired

	// Status line
	case "queued":
		return m.Queued
	case "dropped":
		return m.Dropped
	case "ack_done":
		return m.AckDone
	case "last_refresh":
		return m.LastRefresh
	case "never_refreshed":
		return m.NeverRefresh
	case "sorted_by":
		return m.SortedBy
	case "no_containers":
		return m.NoContainers
	case "select_first":
		return m.SelectFirst
	case "rows_malformed":
		return m.RowsMalformed

	// Hints for keys
	case "up_down":
		return m.UpDown
	case "home_end":
		return m.HomeEnd
	case "page":
		return m.Page
	case "esc_back":
		return m.EscBack
	case "toggle_lang":
		return m.ToggleLang
	case "switch_field":
		return m.SwitchField

	// Fatal errors
	case "fatal_error":
		return m.FatalError
	case "backend_closed":
		return m.BackendClosed
	case "not_a_terminal":
		return m.NotATerminal
	case "permission_denied":
		return m.PermissionDenied
	case "connection_failed":
		return m.ConnectionFailed
	case "config_error":
		return m.ConfigError

	default:
		return key
	}
}

// ParseLanguage 解析语言代码，如 "zh_CN.UTF-8"；无法识别时返回 false
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "zh"):
		return ZH, true
	case strings.HasPrefix(s, "en"):
		return EN, true
	default:
		return EN, false
	}
}

// DetectLanguage detect language from environment variables
func DetectLanguage() Language {
	lang := os.Getenv("LANG")
	if lang == "" {
		lang = os.Getenv("LANGUAGE")
	}
	if lang == "" {
		lang = os.Getenv("LC_ALL")
	}

	if l, ok := ParseLanguage(lang); ok {
		return l
	}
	return EN
}

// Init initialize i18n; explicit 为空时根据环境变量检测
func Init(explicit string) {
	if l, ok := ParseLanguage(explicit); ok {
		SetLanguage(l)
		return
	}
	SetLanguage(DetectLanguage())
}
