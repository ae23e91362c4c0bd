package domain

// Default configuration values
const (
	DefaultMinNoticeMinutes = 30
	DefaultStepMinutes      = 30
)

// Business validation constants
const (
	MinStepMinutes     = 5
	MaxStepMinutes     = 240
	MaxSeatsPerRequest = 100
	MaxCommentLength   = 1000
	MaxCustomerNameLen = 150
	PublicCodeLength   = 12
	MaxCodeGenAttempts = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
