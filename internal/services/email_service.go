package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"subscription-api/internal/config"
	"subscription-api/internal/models"
)

// EmailService sends transactional emails via the Brevo API
type EmailService struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewEmailService creates a new email service instance
func NewEmailService() *EmailService {
	return &EmailService{
		APIKey:    config.AppConfig.BrevoAPIKey,
		FromEmail: config.AppConfig.BrevoFromEmail,
		FromName:  config.AppConfig.BrevoFromName,
	}
}

// EmailRequest represents Brevo email request structure
type EmailRequest struct {
	Sender      EmailSender `json:"sender"`
	To          []EmailTo   `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
	TextContent string      `json:"textContent"`
}

type EmailSender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EmailTo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SendPurchaseReceipt sends a purchase confirmation email
func (s *EmailService) SendPurchaseReceipt(to string, sub *models.Subscription) error {
	subject := fmt.Sprintf("购买成功 - %s", sub.PackageName)
	htmlContent := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>购买成功</title>
		</head>
		<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<div style="background-color: #f8f9fa; padding: 30px; border-radius: 10px;">
				<h1 style="color: #333;">订阅已生效</h1>
				<p style="color: #666; font-size: 16px;">套餐：%s（%s）</p>
				<p style="color: #666; font-size: 16px;">实付金额：%.2f %s</p>
				<p style="color: #666; font-size: 16px;">有效期至：%s</p>
				<p style="color: #999; font-size: 12px; margin-top: 30px;">如果这不是您的操作，请联系客服。</p>
			</div>
		</body>
		</html>
	`, sub.PackageName, sub.PlanDuration, sub.PricePaid, sub.Currency, sub.ExpiryDate.Format(time.RFC3339))

	textContent := fmt.Sprintf(`
		订阅已生效

		套餐：%s（%s）
		实付金额：%.2f %s
		有效期至：%s
	`, sub.PackageName, sub.PlanDuration, sub.PricePaid, sub.Currency, sub.ExpiryDate.Format(time.RFC3339))

	return s.sendEmail(to, subject, htmlContent, textContent)
}

// SendCancellationNotice sends a cancellation email with the retained credit
func (s *EmailService) SendCancellationNotice(to string, sub *models.Subscription) error {
	subject := fmt.Sprintf("订阅已取消 - %s", sub.PackageName)
	htmlContent := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>订阅已取消</title>
		</head>
		<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<div style="background-color: #f8f9fa; padding: 30px; border-radius: 10px;">
				<h1 style="color: #333;">订阅已取消</h1>
				<p style="color: #666; font-size: 16px;">套餐：%s</p>
				<p style="color: #666; font-size: 16px;">剩余额度：%.2f %s，将在下次购买时自动抵扣。</p>
			</div>
		</body>
		</html>
	`, sub.PackageName, sub.CreditsRemaining, sub.Currency)

	textContent := fmt.Sprintf(`
		订阅已取消

		套餐：%s
		剩余额度：%.2f %s，将在下次购买时自动抵扣。
	`, sub.PackageName, sub.CreditsRemaining, sub.Currency)

	return s.sendEmail(to, subject, htmlContent, textContent)
}

// sendEmail sends email via Brevo API
func (s *EmailService) sendEmail(to, subject, htmlContent, textContent string) error {
	if s.APIKey == "" {
		// Email not configured, skip silently
		return nil
	}

	emailReq := EmailRequest{
		Sender: EmailSender{
			Name:  s.FromName,
			Email: s.FromEmail,
		},
		To: []EmailTo{
			{Email: to},
		},
		Subject:     subject,
		HTMLContent: htmlContent,
		TextContent: textContent,
	}

	jsonData, err := json.Marshal(emailReq)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", "https://api.brevo.com/v3/smtp/email", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", s.APIKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("brevo API error: status %d", resp.StatusCode)
	}

	return nil
}
