package constants

const (
	AppName           = "stride"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/stride/stride.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// StorageKey is the fixed key the serialized document lives under,
	// regardless of which backend holds it.
	StorageKey = "step_020"

	// SchemaVersion is bumped whenever the document gains fields that
	// older stored documents need backfilled.
	SchemaVersion = 2

	// StreakLookbackDays bounds the backward walk when counting a streak.
	StreakLookbackDays = 365

	// Default wish saving increment for the +/- CLI shortcuts.
	DefaultSavingStep = 1000
)
