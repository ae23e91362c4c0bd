package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SiteSettings is the venue configuration singleton: one logical record per
// deployment, lazily created with defaults on first access.
type SiteSettings struct {
	ID              int64
	SiteName        string
	SiteDescription string
	Address         string
	Phone           string

	DepositAmount decimal.Decimal
	Currency      string

	// SlotDurationChoices is the ordered set of allowed reservation
	// durations in minutes.
	SlotDurationChoices []int
	MinNoticeMinutes    int

	TelegramEnabled bool
	TelegramToken   string
	TelegramChatID  string

	FromEmail    string
	ReplyToEmail string

	UpdatedAt time.Time
}

// DepositRequired reports whether a deposit is configured.
func (s *SiteSettings) DepositRequired() bool {
	return s.DepositAmount.IsPositive()
}

// IsAllowedDuration reports whether the duration is one of the configured
// slot durations.
func (s *SiteSettings) IsAllowedDuration(minutes int) bool {
	for _, d := range s.SlotDurationChoices {
		if d == minutes {
			return true
		}
	}
	return false
}

// DefaultSettings returns the singleton defaults used on lazy creation.
func DefaultSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:            "Антикафе",
		SiteDescription:     "Уютное пространство для встреч и игр.",
		DepositAmount:       decimal.Zero,
		Currency:            "EUR",
		SlotDurationChoices: []int{60, 120, 180, 240},
		MinNoticeMinutes:    DefaultMinNoticeMinutes,
	}
}
