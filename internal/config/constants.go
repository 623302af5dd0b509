package config

// DefaultPrompt is shown in interactive mode unless the rc file
// overrides it.
const DefaultPrompt = "funsh> "

// RCFileName is looked up in the user's home directory.
const RCFileName = ".funshrc.yaml"

// DefaultHistoryFile is the history database path relative to the
// user's home directory.
const DefaultHistoryFile = ".funsh_history.db"

// DefaultHistoryLimit caps how many entries the history builtin
// returns when --limit is not given.
const DefaultHistoryLimit = 20

// Builtin command names
const (
	MoveCmdName    = "mv"
	CdCmdName      = "cd"
	EchoCmdName    = "echo"
	HistoryCmdName = "history"
)
