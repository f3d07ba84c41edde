package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type settingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepo creates a new PostgreSQL-backed SettingsRepository.
func NewSettingsRepo(db *sqlx.DB) port.SettingsRepository {
	return &settingsRepo{db: db}
}

// Get returns the settings row, creating it with defaults on first access.
func (r *settingsRepo) Get(ctx context.Context) (*domain.CompanySettings, error) {
	var settings domain.CompanySettings
	err := r.db.GetContext(ctx, &settings, "SELECT * FROM company_settings WHERE id = 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			defaults := domain.DefaultCompanySettings()
			if err := r.Save(ctx, defaults); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("settingsRepo.Get: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepo) Save(ctx context.Context, settings *domain.CompanySettings) error {
	settings.ID = 1
	settings.UpdatedAt = time.Now().UTC()

	query := `INSERT INTO company_settings (
		id, name, address, city, state, pincode, phone, email, gstin, pan,
		logo_key, signature_key, bank_name, account_number, ifsc, upi_id,
		terms, jurisdiction, prefixes, counters, default_gst_rate,
		default_currency, default_template, updated_at
	) VALUES (
		:id, :name, :address, :city, :state, :pincode, :phone, :email, :gstin, :pan,
		:logo_key, :signature_key, :bank_name, :account_number, :ifsc, :upi_id,
		:terms, :jurisdiction, :prefixes, :counters, :default_gst_rate,
		:default_currency, :default_template, :updated_at
	)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name, address = EXCLUDED.address, city = EXCLUDED.city,
		state = EXCLUDED.state, pincode = EXCLUDED.pincode, phone = EXCLUDED.phone,
		email = EXCLUDED.email, gstin = EXCLUDED.gstin, pan = EXCLUDED.pan,
		logo_key = EXCLUDED.logo_key, signature_key = EXCLUDED.signature_key,
		bank_name = EXCLUDED.bank_name, account_number = EXCLUDED.account_number,
		ifsc = EXCLUDED.ifsc, upi_id = EXCLUDED.upi_id, terms = EXCLUDED.terms,
		jurisdiction = EXCLUDED.jurisdiction, prefixes = EXCLUDED.prefixes,
		counters = EXCLUDED.counters, default_gst_rate = EXCLUDED.default_gst_rate,
		default_currency = EXCLUDED.default_currency, default_template = EXCLUDED.default_template,
		updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("settingsRepo.Save: %w", err)
	}
	return nil
}

// IncrementCounter bumps one document type counter inside the counters JSONB
// column and returns the new value. The update is a single statement so
// concurrent saves cannot double-assign a number.
func (r *settingsRepo) IncrementCounter(ctx context.Context, docType domain.DocumentType) (int, error) {
	var next int
	err := r.db.GetContext(ctx, &next, `
		UPDATE company_settings
		SET counters = jsonb_set(
			counters,
			ARRAY[$1::text],
			(COALESCE((counters->>$1)::int, 1) + 1)::text::jsonb
		), updated_at = $2
		WHERE id = 1
		RETURNING (counters->>$1)::int`,
		string(docType), time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("settingsRepo.IncrementCounter: %w", err)
	}
	return next, nil
}
