package i18n

var zhMessages = &Messages{
	// 通用
	AppTitle: "容器",
	Loading:  "加载中...",
	Refresh:  "刷新",
	Quit:     "退出",
	Help:     "帮助",
	Cancel:   "取消",
	Confirm:  "确认",
	Unknown:  "未知",

	// 列
	ColID:     "ID",
	ColName:   "名称",
	ColImage:  "镜像",
	ColStatus: "状态",

	// 容器操作
	Start:       "启动",
	Stop:        "停止",
	Remove:      "删除",
	ForceRemove: "强制删除",
	Logs:        "日志",
	Create:      "创建",
	Sort:        "排序",

	// 日志视图
	LogsTitle:       "日志",
	LogsUnavailable: "日志不可用",
	LogsEmpty:       "（无输出）",
	LoadingLogs:     "正在加载日志...",
	ScrollHint:      "↑/↓ PgUp/PgDn 滚动",

	// 创建对话框
	CreateTitle:   "创建容器",
	CreateName:    "名称",
	CreateImage:   "镜像",
	CreateHint:    "tab 切换 · enter 创建 · esc 取消",
	ImageRequired: "镜像不能为空",

	// 状态栏
	Queued:        "已提交",
	Dropped:       "已丢弃",
	AckDone:       "完成",
	LastRefresh:   "%s 前更新",
	NeverRefresh:  "等待首次刷新",
	SortedBy:      "排序",
	NoContainers:  "没有容器",
	SelectFirst:   "请先选择容器",
	RowsMalformed: "不完整的行",

	// 按键提示
	UpDown:      "上/下",
	HomeEnd:     "首/尾",
	Page:        "翻页",
	EscBack:     "返回",
	ToggleLang:  "语言",
	SwitchField: "下一项",

	// 致命错误
	FatalError:       "致命错误",
	BackendClosed:    "后台 Worker 意外停止",
	NotATerminal:     "标准输出不是终端",
	PermissionDenied: "没有访问守护进程 socket 的权限",
	ConnectionFailed: "无法连接容器管理守护进程",
	ConfigError:      "配置错误",
}
