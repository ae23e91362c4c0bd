package manage_schedule

import (
	"fmt"
	"time"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

// WeeklyEntryRequest HTTP request model для записи недельного расписания
type WeeklyEntryRequest struct {
	DayOfWeek int     `json:"dayOfWeek"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// WeeklyEntryResponse HTTP модель записи недельного расписания
type WeeklyEntryResponse struct {
	ID        int64   `json:"id"`
	DayOfWeek int     `json:"dayOfWeek"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// WeeklyListResponse HTTP response model
type WeeklyListResponse struct {
	Entries []WeeklyEntryResponse `json:"entries"`
}

// SpecialDayRequest HTTP request model для особого дня
type SpecialDayRequest struct {
	Date      string  `json:"date"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	Note      string  `json:"note,omitempty"`
}

// SpecialDayResponse HTTP модель особого дня
type SpecialDayResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	Note      string  `json:"note,omitempty"`
}

// SpecialListResponse HTTP response model
type SpecialListResponse struct {
	Days []SpecialDayResponse `json:"days"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *WeeklyEntryRequest) ToDomain() *domain.WeeklySchedule {
	return &domain.WeeklySchedule{
		DayOfWeek: r.DayOfWeek,
		IsOpen:    r.IsOpen,
		OpenTime:  toTimeString(r.OpenTime),
		CloseTime: toTimeString(r.CloseTime),
	}
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *SpecialDayRequest) ToDomain() (*domain.SpecialDay, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %v", r.Date, err)
	}
	return &domain.SpecialDay{
		Date:      date,
		IsOpen:    r.IsOpen,
		OpenTime:  toTimeString(r.OpenTime),
		CloseTime: toTimeString(r.CloseTime),
		Note:      r.Note,
	}, nil
}

// FromDomainWeekly конвертирует domain модель в HTTP response
func FromDomainWeekly(e *domain.WeeklySchedule) *WeeklyEntryResponse {
	return &WeeklyEntryResponse{
		ID:        e.ID,
		DayOfWeek: e.DayOfWeek,
		IsOpen:    e.IsOpen,
		OpenTime:  fromTimeString(e.OpenTime),
		CloseTime: fromTimeString(e.CloseTime),
	}
}

// FromDomainWeeklyList конвертирует список записей в HTTP response
func FromDomainWeeklyList(list []*domain.WeeklySchedule) *WeeklyListResponse {
	out := &WeeklyListResponse{Entries: make([]WeeklyEntryResponse, 0, len(list))}
	for _, e := range list {
		out.Entries = append(out.Entries, *FromDomainWeekly(e))
	}
	return out
}

// FromDomainSpecial конвертирует domain модель в HTTP response
func FromDomainSpecial(d *domain.SpecialDay) *SpecialDayResponse {
	return &SpecialDayResponse{
		ID:        d.ID,
		Date:      d.Date.Format("2006-01-02"),
		IsOpen:    d.IsOpen,
		OpenTime:  fromTimeString(d.OpenTime),
		CloseTime: fromTimeString(d.CloseTime),
		Note:      d.Note,
	}
}

// FromDomainSpecialList конвертирует список особых дней в HTTP response
func FromDomainSpecialList(list []*domain.SpecialDay) *SpecialListResponse {
	out := &SpecialListResponse{Days: make([]SpecialDayResponse, 0, len(list))}
	for _, d := range list {
		out.Days = append(out.Days, *FromDomainSpecial(d))
	}
	return out
}

func toTimeString(s *string) *types.TimeString {
	if s == nil {
		return nil
	}
	ts := types.TimeString(*s)
	return &ts
}

func fromTimeString(ts *types.TimeString) *string {
	if ts == nil {
		return nil
	}
	s := ts.String()
	return &s
}
