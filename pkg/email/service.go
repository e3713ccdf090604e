package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service.
// If sendGridAPIKey is provided, emails will be sent via SendGrid.
// Otherwise, emails will be logged to console (development mode).
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendPayoutPaidEmail notifies a producer that their monthly payout was disbursed
func (s *Service) SendPayoutPaidEmail(toEmail, toName, month string, amount float64, transactionID string) error {
	subject := fmt.Sprintf("Your TrackLane payout for %s is on its way", month)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payout sent!</h2>
			<p>Hi %s,</p>
			<p>Your earnings for <strong>%s</strong> have been transferred to your wallet.</p>
			<ul>
				<li>Amount: <strong>$%.2f USDC</strong></li>
				<li>Transaction ID: %s</li>
			</ul>
			<p><a href="%s/dashboard/payouts" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Payout History</a></p>
			<p>Transfers usually settle within a few minutes, but can take up to an hour on a busy chain.</p>
			<p>Thanks for making music with us,<br>The TrackLane Team</p>
		</body>
		</html>
	`, toName, month, amount, transactionID, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your earnings for %s have been transferred to your wallet.

Amount: $%.2f USDC
Transaction ID: %s

View your payout history: %s/dashboard/payouts

Thanks for making music with us,
The TrackLane Team
	`, toName, month, amount, transactionID, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, transactionID)
}

// SendLicenseReceiptEmail sends a purchase receipt to a buyer
func (s *Service) SendLicenseReceiptEmail(toEmail, toName, trackTitle, licenseType string, amount float64) error {
	subject := fmt.Sprintf("Your TrackLane license for \"%s\"", trackTitle)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thanks for your purchase!</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> license for <strong>%s</strong> is ready.</p>
			<p>Amount charged: <strong>$%.2f</strong></p>
			<p><a href="%s/library" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Download from your Library</a></p>
			<p>Thanks,<br>The TrackLane Team</p>
		</body>
		</html>
	`, toName, licenseType, trackTitle, amount, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your %s license for "%s" is ready.

Amount charged: $%.2f

Download it from your library: %s/library

Thanks,
The TrackLane Team
	`, toName, licenseType, trackTitle, amount, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, trackTitle)
}

// SendWelcomeEmail sends a welcome email after registration
func (s *Service) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to TrackLane!"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to TrackLane!</h2>
			<p>Hi %s,</p>
			<p>Your account is ready. Here's how to get started:</p>
			<ul>
				<li>Browse the catalog and license tracks for your next project</li>
				<li>Producers: upload tracks and set your prices</li>
				<li>Add a wallet address to receive monthly payouts</li>
			</ul>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The TrackLane Team</p>
		</body>
		</html>
	`, toName, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your TrackLane account is ready.

- Browse the catalog and license tracks for your next project
- Producers: upload tracks and set your prices
- Add a wallet address to receive monthly payouts

Go to your dashboard: %s/dashboard

Thanks,
The TrackLane Team
	`, toName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, "welcome")
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, detail string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Detail: %s", detail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}
