package domain

import "errors"

var (
	ErrNotFound                  = errors.New("resource not found")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrOwnerExists               = errors.New("owner account already registered")
	ErrDocumentNotFound          = errors.New("document not found")
	ErrNoCurrentDocument         = errors.New("no document is being edited")
	ErrLineItemNotFound          = errors.New("line item not found")
	ErrInvalidDocumentType       = errors.New("invalid document type")
	ErrInvalidGSTRate            = errors.New("invalid gst rate; allowed: 0, 5, 12, 18, 28")
	ErrInvalidDiscountType       = errors.New("invalid discount type; allowed: amount, percentage")
	ErrDocumentInvalid           = errors.New("document failed save validation")
	ErrClientNotFound            = errors.New("client not found")
	ErrDuplicateEmail            = errors.New("email already registered")
	ErrUnsupportedImageType      = errors.New("unsupported image type; allowed: png, jpg, webp")
	ErrImageTooLarge             = errors.New("image exceeds maximum allowed size")
	ErrUploadFailed              = errors.New("asset upload to storage failed")
	ErrPasswordResetTokenInvalid = errors.New("password reset token is invalid or has expired")
)
