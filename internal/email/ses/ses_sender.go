package ses

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendDocument(ctx context.Context, toEmail string, doc *domain.Document, company *domain.CompanySettings) error {
	label := domain.TypeConfig(doc.Type).Label
	subject := fmt.Sprintf("%s %s from %s", label, doc.Number, company.Name)
	htmlBody := buildDocumentHTML(doc, company, label)
	textBody := buildDocumentText(doc, company, label)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, url.QueryEscape(resetToken))

	subject := "Reset your BillKit password"
	htmlBody := buildPasswordResetHTML(toName, resetURL)
	textBody := fmt.Sprintf("Hi %s,\n\nWe received a request to reset your password. Visit the link below to set a new password:\n%s\n\nThis link expires in 1 hour. If you didn't request this, you can safely ignore this email.\n\nBillKit", toName, resetURL)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildDocumentText(doc *domain.Document, company *domain.CompanySettings, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", doc.Client.Name)
	fmt.Fprintf(&b, "Please find the details of %s %s dated %s.\n\n", label, doc.Number, doc.Date)
	for i := range doc.Items {
		item := &doc.Items[i]
		fmt.Fprintf(&b, "  %s  x%.2f @ %.2f = %.2f\n", item.Description, item.Quantity, item.Rate, item.Amount)
	}
	fmt.Fprintf(&b, "\nSubtotal: %.2f\n", doc.Subtotal)
	if doc.DiscountAmount != 0 {
		fmt.Fprintf(&b, "Discount: %.2f\n", doc.DiscountAmount)
	}
	if doc.IsInterState {
		fmt.Fprintf(&b, "IGST: %.2f\n", doc.IGSTTotal)
	} else {
		fmt.Fprintf(&b, "CGST: %.2f\nSGST: %.2f\n", doc.CGSTTotal, doc.SGSTTotal)
	}
	if doc.ShippingCharges != 0 {
		fmt.Fprintf(&b, "Shipping: %.2f\n", doc.ShippingCharges)
	}
	fmt.Fprintf(&b, "Grand Total: %.2f (%s)\n\n", doc.GrandTotal, doc.AmountInWords)
	if doc.DueDate != "" {
		fmt.Fprintf(&b, "Due date: %s\n\n", doc.DueDate)
	}
	fmt.Fprintf(&b, "Regards,\n%s\n", company.Name)
	return b.String()
}

func buildDocumentHTML(doc *domain.Document, company *domain.CompanySettings, label string) string {
	var rows strings.Builder
	for i := range doc.Items {
		item := &doc.Items[i]
		fmt.Fprintf(&rows, `<tr><td style="padding:6px 8px;border-bottom:1px solid #eee;">%s</td><td style="padding:6px 8px;border-bottom:1px solid #eee;text-align:right;">%.2f</td><td style="padding:6px 8px;border-bottom:1px solid #eee;text-align:right;">%.2f</td><td style="padding:6px 8px;border-bottom:1px solid #eee;text-align:right;">%.2f</td></tr>`,
			item.Description, item.Quantity, item.Rate, item.Amount)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s %s</h2>
  <p>Dear %s,</p>
  <p>Please find the summary of %s <strong>%s</strong> dated %s below.</p>
  <table style="width:100%%;border-collapse:collapse;margin:20px 0;">
    <tr style="background:#f6f6f6;"><th style="padding:6px 8px;text-align:left;">Description</th><th style="padding:6px 8px;text-align:right;">Qty</th><th style="padding:6px 8px;text-align:right;">Rate</th><th style="padding:6px 8px;text-align:right;">Amount</th></tr>
    %s
  </table>
  <p style="font-size: 16px;"><strong>Grand Total: %.2f</strong></p>
  <p style="color: #666;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, label, doc.Number, doc.Client.Name, label, doc.Number, doc.Date, rows.String(), doc.GrandTotal, doc.AmountInWords, company.Name)
}

func buildPasswordResetHTML(name, resetURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Reset your password</h2>
  <p>Hi %s,</p>
  <p>We received a request to reset your BillKit password. Click the button below to set a new password:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Reset Password</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <p style="color: #999; font-size: 12px;">This link expires in 1 hour. If you didn't request a password reset, you can safely ignore this email.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">BillKit - GST Billing</p>
</body>
</html>`, name, resetURL, resetURL)
}
