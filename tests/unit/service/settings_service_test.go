package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billkit/internal/config"
	"billkit/internal/domain"
	"billkit/internal/port"
	"billkit/internal/service"
	"billkit/mocks"
)

// memFile adapts an in-memory byte slice to multipart.File.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newMemFile(data []byte) multipart.File {
	return memFile{bytes.NewReader(data)}
}

func uploadHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

func testS3Config() *config.S3Config {
	return &config.S3Config{
		Bucket:         "billkit-test",
		MaxImageSizeMB: 5,
		PresignExpiry:  3600,
	}
}

func newSettingsService(t *testing.T) (service.SettingsService, *mocks.MockSettingsRepo, *mocks.MockObjectStorage) {
	t.Helper()
	settingsRepo := new(mocks.MockSettingsRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewSettingsService(settingsRepo, storage, testS3Config(), zerolog.Nop())
	return svc, settingsRepo, storage
}

func TestSettingsService_Update_MergesPrefixesAndKeepsCounters(t *testing.T) {
	svc, settingsRepo, _ := newSettingsService(t)
	ctx := context.Background()

	stored := testSettings()
	stored.Counters[domain.TypeSaleInvoice] = 42
	settingsRepo.On("Get", mock.Anything).Return(stored, nil)
	settingsRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(ctx, service.SettingsInput{
		Name:  "New Traders",
		State: "Gujarat",
		Prefixes: domain.PrefixMap{
			domain.TypeSaleInvoice:           "INV",
			domain.TypeQuotation:             "",
			domain.DocumentType("not-a-doc"): "XX",
		},
		DefaultGST: 3, // not a slab, must be ignored
	})
	require.NoError(t, err)

	assert.Equal(t, "New Traders", updated.Name)
	assert.Equal(t, "Gujarat", updated.State)
	assert.Equal(t, "INV", updated.Prefixes[domain.TypeSaleInvoice])
	assert.Equal(t, "QT", updated.Prefixes[domain.TypeQuotation])
	assert.NotContains(t, updated.Prefixes, domain.DocumentType("not-a-doc"))
	assert.Equal(t, 42, updated.Counters[domain.TypeSaleInvoice])
	assert.Equal(t, domain.GSTRate(18), updated.DefaultGST)
}

func TestSettingsService_UploadAsset_StoresLogo(t *testing.T) {
	svc, settingsRepo, storage := newSettingsService(t)
	ctx := context.Background()

	settingsRepo.On("Get", mock.Anything).Return(testSettings(), nil)
	settingsRepo.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.CompanySettings) bool {
		return s.LogoKey == "assets/logo.png"
	})).Return(nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Key == "assets/logo.png" && in.Bucket == "billkit-test"
	})).Return(&port.UploadOutput{Location: "s3://billkit-test/assets/logo.png"}, nil)

	updated, err := svc.UploadAsset(ctx, service.AssetUploadInput{
		Kind:   service.AssetLogo,
		File:   newMemFile(pngBytes),
		Header: uploadHeader("logo.png", "image/png", int64(len(pngBytes))),
	})
	require.NoError(t, err)

	assert.Equal(t, "assets/logo.png", updated.LogoKey)
	storage.AssertExpectations(t)
	settingsRepo.AssertExpectations(t)
}

func TestSettingsService_UploadAsset_RejectsOversizedImage(t *testing.T) {
	svc, _, storage := newSettingsService(t)

	_, err := svc.UploadAsset(context.Background(), service.AssetUploadInput{
		Kind:   service.AssetLogo,
		File:   newMemFile(pngBytes),
		Header: uploadHeader("logo.png", "image/png", 6*1024*1024),
	})

	assert.ErrorIs(t, err, domain.ErrImageTooLarge)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestSettingsService_UploadAsset_RejectsNonImage(t *testing.T) {
	svc, _, storage := newSettingsService(t)

	data := []byte("#!/bin/sh\necho not an image\n")
	_, err := svc.UploadAsset(context.Background(), service.AssetUploadInput{
		Kind:   service.AssetSignature,
		File:   newMemFile(data),
		Header: uploadHeader("sig.png", "image/png", int64(len(data))),
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedImageType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestSettingsService_UploadAsset_UnknownKind(t *testing.T) {
	svc, _, _ := newSettingsService(t)

	_, err := svc.UploadAsset(context.Background(), service.AssetUploadInput{
		Kind:   service.AssetKind("banner"),
		File:   newMemFile(pngBytes),
		Header: uploadHeader("banner.png", "image/png", int64(len(pngBytes))),
	})

	assert.Error(t, err)
}

func TestSettingsService_AssetURL(t *testing.T) {
	svc, settingsRepo, storage := newSettingsService(t)
	ctx := context.Background()

	stored := testSettings()
	stored.LogoKey = "assets/logo.png"
	settingsRepo.On("Get", mock.Anything).Return(stored, nil)
	storage.On("GetPresignedURL", mock.Anything, "billkit-test", "assets/logo.png", int64(3600)).
		Return("https://example.test/signed", nil)

	url, err := svc.AssetURL(ctx, service.AssetLogo)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/signed", url)

	// No signature uploaded yet.
	_, err = svc.AssetURL(ctx, service.AssetSignature)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
