package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"billkit/internal/config"
	"billkit/internal/domain"
	"billkit/internal/port"
)

// AssetKind selects which company image an upload replaces.
type AssetKind string

const (
	AssetLogo      AssetKind = "logo"
	AssetSignature AssetKind = "signature"
)

// allowedImageTypes maps detected content types to storage extensions.
var allowedImageTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// SettingsInput is the DTO for company profile updates. Prefixes and counters
// are merged over the stored maps so a partial payload cannot wipe numbering
// state.
type SettingsInput struct {
	Name          string               `json:"name" binding:"required"`
	Address       string               `json:"address"`
	City          string               `json:"city"`
	State         string               `json:"state" binding:"required"`
	Pincode       string               `json:"pincode"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email" binding:"omitempty,email"`
	GSTIN         string               `json:"gstin"`
	PAN           string               `json:"pan"`
	BankName      string               `json:"bank_name"`
	AccountNumber string               `json:"account_number"`
	IFSC          string               `json:"ifsc"`
	UPIID         string               `json:"upi_id"`
	Terms         string               `json:"terms"`
	Jurisdiction  string               `json:"jurisdiction"`
	Prefixes      domain.PrefixMap     `json:"prefixes"`
	DefaultGST    domain.GSTRate       `json:"default_gst_rate"`
	Currency      domain.CurrencyCode  `json:"default_currency"`
	Template      domain.TemplateStyle `json:"default_template"`
}

// AssetUploadInput is the DTO for logo/signature uploads.
type AssetUploadInput struct {
	Kind   AssetKind
	File   multipart.File
	Header *multipart.FileHeader
}

// SettingsService manages the seller profile and its image assets.
type SettingsService interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Update(ctx context.Context, input SettingsInput) (*domain.CompanySettings, error)
	UploadAsset(ctx context.Context, input AssetUploadInput) (*domain.CompanySettings, error)
	AssetURL(ctx context.Context, kind AssetKind) (string, error)
}

type settingsService struct {
	settingsRepo port.SettingsRepository
	storage      port.ObjectStorage
	cfg          *config.S3Config
	log          zerolog.Logger
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(
	settingsRepo port.SettingsRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
	log zerolog.Logger,
) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		storage:      storage,
		cfg:          cfg,
		log:          log,
	}
}

func (s *settingsService) Get(ctx context.Context) (*domain.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings.Get: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, input SettingsInput) (*domain.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings.Update: %w", err)
	}

	settings.Name = input.Name
	settings.Address = input.Address
	settings.City = input.City
	settings.State = input.State
	settings.Pincode = input.Pincode
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.GSTIN = input.GSTIN
	settings.PAN = input.PAN
	settings.BankName = input.BankName
	settings.AccountNumber = input.AccountNumber
	settings.IFSC = input.IFSC
	settings.UPIID = input.UPIID
	settings.Terms = input.Terms
	settings.Jurisdiction = input.Jurisdiction
	for docType, prefix := range input.Prefixes {
		if prefix != "" && domain.ValidDocumentType(docType) {
			settings.Prefixes[docType] = prefix
		}
	}
	if input.DefaultGST.Valid() {
		settings.DefaultGST = input.DefaultGST
	}
	if input.Currency != "" {
		settings.Currency = input.Currency
	}
	if input.Template != "" {
		settings.Template = input.Template
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("settings.Update: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UploadAsset(ctx context.Context, input AssetUploadInput) (*domain.CompanySettings, error) {
	if input.Kind != AssetLogo && input.Kind != AssetSignature {
		return nil, fmt.Errorf("settings.UploadAsset: unknown asset kind %q", input.Kind)
	}

	maxBytes := s.cfg.MaxImageSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrImageTooLarge
	}

	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading image header: %w", err)
	}
	ext, ok := allowedImageTypes[http.DetectContentType(buf[:n])]
	if !ok {
		return nil, domain.ErrUnsupportedImageType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking image: %w", err)
	}

	key := fmt.Sprintf("assets/%s.%s", input.Kind, ext)
	contentType := input.Header.Header.Get("Content-Type")

	s.log.Info().Str("kind", string(input.Kind)).Str("key", key).Int64("size", input.Header.Size).
		Msg("uploading company asset")

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("asset upload failed")
		return nil, domain.ErrUploadFailed
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings.UploadAsset: %w", err)
	}
	switch input.Kind {
	case AssetLogo:
		settings.LogoKey = key
	case AssetSignature:
		settings.SignatureKey = key
	}
	settings.UpdatedAt = time.Now().UTC()
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("settings.UploadAsset: %w", err)
	}
	return settings, nil
}

func (s *settingsService) AssetURL(ctx context.Context, kind AssetKind) (string, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("settings.AssetURL: %w", err)
	}

	var key string
	switch kind {
	case AssetLogo:
		key = settings.LogoKey
	case AssetSignature:
		key = settings.SignatureKey
	}
	if key == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
}
