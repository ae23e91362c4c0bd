package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dev4ox/anti-cafe-reservation/internal/domain"
	"github.com/dev4ox/anti-cafe-reservation/pkg/psqlbuilder"
	"github.com/dev4ox/anti-cafe-reservation/pkg/txmanager"
)

var settingsColumns = []string{
	"id",
	"site_name",
	"site_description",
	"address",
	"phone",
	"deposit_amount",
	"currency",
	"slot_duration_choices",
	"min_notice_minutes",
	"tg_enabled",
	"tg_bot_token",
	"tg_chat_id",
	"from_email",
	"reply_to_email",
	"updated_at",
}

// Repository репозиторий настроек площадки (singleton-запись)
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the settings row. There is at most one logical row; the
// lowest id wins if the table ever ends up with more.
func (r *Repository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("site_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SiteSettings
	var durations []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SiteName,
		&s.SiteDescription,
		&s.Address,
		&s.Phone,
		&s.DepositAmount,
		&s.Currency,
		&durations,
		&s.MinNoticeMinutes,
		&s.TelegramEnabled,
		&s.TelegramToken,
		&s.TelegramChatID,
		&s.FromEmail,
		&s.ReplyToEmail,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(durations, &s.SlotDurationChoices); err != nil {
		return nil, fmt.Errorf("%w: Get - decode slot durations: %v", ErrScanRow, err)
	}
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Create вставляет запись настроек (используется при ленивой инициализации)
func (r *Repository) Create(ctx context.Context, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	durations, err := json.Marshal(s.SlotDurationChoices)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode slot durations: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("site_settings").
		Columns(
			"site_name",
			"site_description",
			"address",
			"phone",
			"deposit_amount",
			"currency",
			"slot_duration_choices",
			"min_notice_minutes",
			"tg_enabled",
			"tg_bot_token",
			"tg_chat_id",
			"from_email",
			"reply_to_email",
		).
		Values(
			s.SiteName,
			s.SiteDescription,
			s.Address,
			s.Phone,
			s.DepositAmount,
			s.Currency,
			durations,
			s.MinNoticeMinutes,
			s.TelegramEnabled,
			s.TelegramToken,
			s.TelegramChatID,
			s.FromEmail,
			s.ReplyToEmail,
		).
		Suffix("RETURNING id, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Update обновляет запись настроек по ID
func (r *Repository) Update(ctx context.Context, id int64, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	durations, err := json.Marshal(s.SlotDurationChoices)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - encode slot durations: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("site_settings").
		Set("site_name", s.SiteName).
		Set("site_description", s.SiteDescription).
		Set("address", s.Address).
		Set("phone", s.Phone).
		Set("deposit_amount", s.DepositAmount).
		Set("currency", s.Currency).
		Set("slot_duration_choices", durations).
		Set("min_notice_minutes", s.MinNoticeMinutes).
		Set("tg_enabled", s.TelegramEnabled).
		Set("tg_bot_token", s.TelegramToken).
		Set("tg_chat_id", s.TelegramChatID).
		Set("from_email", s.FromEmail).
		Set("reply_to_email", s.ReplyToEmail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.ID = id
	s.UpdatedAt = updatedAt.Time
	return s, nil
}
