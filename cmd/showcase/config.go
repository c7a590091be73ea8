package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"

	// Preview command flags
	FlagHeadless = "headless"
	FlagTUI      = "tui"
	FlagContent  = "content-file"
	FlagWatch    = "watch"
	FlagInterval = "interval"

	// Events command flags
	FlagFollow = "follow"
	FlagCount  = "count"

	// Output format flags
	FlagJSON = "json"

	// Init command flags
	FlagDryRun = "dry-run"
	FlagForce  = "force"
	FlagDir    = "dir"
)
