package constants

const (
	// AppName is used for config paths, keyring entries, and the logger prefix
	AppName = "thirty"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MaxDays is the fixed length of a challenge
	MaxDays = 30

	// DefaultKeyringUser is the keyring account name for the Postgres connection string
	DefaultKeyringUser = "postgres-connection"
)
