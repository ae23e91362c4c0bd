package manage_settings

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
)

// SettingsRequest HTTP request model для обновления настроек
type SettingsRequest struct {
	SiteName            string `json:"siteName"`
	SiteDescription     string `json:"siteDescription,omitempty"`
	Address             string `json:"address,omitempty"`
	Phone               string `json:"phone,omitempty"`
	DepositAmount       string `json:"depositAmount"`
	Currency            string `json:"currency"`
	SlotDurationChoices []int  `json:"slotDurationChoices"`
	MinNoticeMinutes    int    `json:"minNoticeMinutes"`
	TelegramEnabled     bool   `json:"telegramEnabled"`
	TelegramToken       string `json:"telegramToken,omitempty"`
	TelegramChatID      string `json:"telegramChatId,omitempty"`
	FromEmail           string `json:"fromEmail,omitempty"`
	ReplyToEmail        string `json:"replyToEmail,omitempty"`
}

// SettingsResponse HTTP модель настроек
type SettingsResponse struct {
	SiteName            string `json:"siteName"`
	SiteDescription     string `json:"siteDescription,omitempty"`
	Address             string `json:"address,omitempty"`
	Phone               string `json:"phone,omitempty"`
	DepositAmount       string `json:"depositAmount"`
	Currency            string `json:"currency"`
	SlotDurationChoices []int  `json:"slotDurationChoices"`
	MinNoticeMinutes    int    `json:"minNoticeMinutes"`
	TelegramEnabled     bool   `json:"telegramEnabled"`
	TelegramToken       string `json:"telegramToken,omitempty"`
	TelegramChatID      string `json:"telegramChatId,omitempty"`
	FromEmail           string `json:"fromEmail,omitempty"`
	ReplyToEmail        string `json:"replyToEmail,omitempty"`
	UpdatedAt           string `json:"updatedAt,omitempty"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *SettingsRequest) ToDomain() (*domain.SiteSettings, error) {
	deposit := decimal.Zero
	if r.DepositAmount != "" {
		parsed, err := decimal.NewFromString(r.DepositAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid deposit amount %q: %v", r.DepositAmount, err)
		}
		deposit = parsed
	}
	return &domain.SiteSettings{
		SiteName:            r.SiteName,
		SiteDescription:     r.SiteDescription,
		Address:             r.Address,
		Phone:               r.Phone,
		DepositAmount:       deposit,
		Currency:            r.Currency,
		SlotDurationChoices: r.SlotDurationChoices,
		MinNoticeMinutes:    r.MinNoticeMinutes,
		TelegramEnabled:     r.TelegramEnabled,
		TelegramToken:       r.TelegramToken,
		TelegramChatID:      r.TelegramChatID,
		FromEmail:           r.FromEmail,
		ReplyToEmail:        r.ReplyToEmail,
	}, nil
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(s *domain.SiteSettings) *SettingsResponse {
	resp := &SettingsResponse{
		SiteName:            s.SiteName,
		SiteDescription:     s.SiteDescription,
		Address:             s.Address,
		Phone:               s.Phone,
		DepositAmount:       s.DepositAmount.StringFixed(2),
		Currency:            s.Currency,
		SlotDurationChoices: s.SlotDurationChoices,
		MinNoticeMinutes:    s.MinNoticeMinutes,
		TelegramEnabled:     s.TelegramEnabled,
		TelegramToken:       s.TelegramToken,
		TelegramChatID:      s.TelegramChatID,
		FromEmail:           s.FromEmail,
		ReplyToEmail:        s.ReplyToEmail,
	}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}
