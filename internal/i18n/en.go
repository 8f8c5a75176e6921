package i18n

var enMessages = &Messages{
	// Common
	AppTitle: "Containers",
	Loading:  "Loading...",
	Refresh:  "Refresh",
	Quit:     "Quit",
	Help:     "Help",
	Cancel:   "Cancel",
	Confirm:  "Confirm",
	Unknown:  "unknown",

	// Columns
	ColID:     "ID",
	ColName:   "NAME",
	ColImage:  "IMAGE",
	ColStatus: "STATUS",

	// Container operations
	Start:       "Start",
	Stop:        "Stop",
	Remove:      "Remove",
	ForceRemove: "Force remove",
	Logs:        "Logs",
	Create:      "Create",
	Sort:        "Sort",

	// Logs view
	LogsTitle:       "Logs",
	LogsUnavailable: "Logs unavailable",
	LogsEmpty:       "(no output)",
	LoadingLogs:     "Loading logs...",
	ScrollHint:      "↑/↓ PgUp/PgDn scroll",

	// Create dialog
	CreateTitle:   "Create container",
	CreateName:    "Name",
	CreateImage:   "Image",
	CreateHint:    "tab switch field · enter create · esc cancel",
	ImageRequired: "Image is required",

	// Status line
	Queued:        "Queued",
	Dropped:       "Dropped",
	AckDone:       "done",
	LastRefresh:   "updated %s ago",
	NeverRefresh:  "waiting for first refresh",
	SortedBy:      "sorted by",
	NoContainers:  "No containers",
	SelectFirst:   "Select a container first",
	RowsMalformed: "incomplete rows",

	// Hints for keys
	UpDown:      "up/down",
	HomeEnd:     "top/bottom",
	Page:        "page",
	EscBack:     "back",
	ToggleLang:  "language",
	SwitchField: "next field",

	// Fatal errors
	FatalError:       "Fatal error",
	BackendClosed:    "backend worker stopped unexpectedly",
	NotATerminal:     "stdout is not a terminal",
	PermissionDenied: "no permission to access the daemon socket",
	ConnectionFailed: "cannot connect to the container daemon",
	ConfigError:      "Configuration error",
}
