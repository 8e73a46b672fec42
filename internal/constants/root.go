package constants

const (
	AppName            = "studyflow"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/studyflow/studyflow.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ConnectionEnvVar overrides the keyring-stored database connection string when set
	ConnectionEnvVar = "STUDYFLOW_DB_CONNECTION"
)
