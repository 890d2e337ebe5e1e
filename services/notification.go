package services

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"shopsync-backend/models"
	"shopsync-backend/utils"
)

// Notifier sends transactional email through SendGrid. With no API key
// configured it logs and skips — the core flows never depend on delivery.
type Notifier struct {
	apiKey  string
	from    string
	appName string
	appURL  string
}

func NewNotifier(apiKey, from, appName, appURL string) *Notifier {
	return &Notifier{apiKey: apiKey, from: from, appName: appName, appURL: appURL}
}

func (n *Notifier) send(toEmail, toName, subject, plain, html string) {
	if n.apiKey == "" {
		log.Printf("⚠️  SendGrid API key not set, skipping email to %s", toEmail)
		return
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(n.appName, n.from),
		subject,
		mail.NewEmail(toName, toEmail),
		plain,
		html,
	)

	client := sendgrid.NewSendClient(n.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("❌ Email send error: %v", err)
		return
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Printf("✅ Email sent to %s", toEmail)
	} else {
		log.Printf("⚠️  SendGrid returned status: %d", resp.StatusCode)
	}
}

// NotifyInvitation emails a join link to someone not yet in the group.
func (n *Notifier) NotifyInvitation(email, inviterName, groupName, token string) {
	subject := fmt.Sprintf("%s invited you to join \"%s\" on %s", inviterName, groupName, n.appName)
	joinURL := fmt.Sprintf("%s/join?invite=%s", n.appURL, token)
	plain := fmt.Sprintf("%s invited you to join %q on %s. Join here: %s", inviterName, groupName, n.appName, joinURL)
	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #1DB954; margin-top: 0;">🛒 You're invited!</h2>
		<p><strong>%s</strong> invited you to join <strong>"%s"</strong> on %s.</p>
		<p>%s keeps one shared shopping list per group and settles the costs afterwards.</p>
		<div style="margin: 24px 0;">
			<a href="%s" style="background: #1DB954; color: white; padding: 12px 32px; border-radius: 8px; text-decoration: none; font-weight: bold;">Join Now</a>
		</div>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, inviterName, groupName, n.appName, n.appName, joinURL, n.appName)

	n.send(email, "", subject, plain, html)
}

// NotifySettlement mails one member their owed total after a settlement run.
func (n *Notifier) NotifySettlement(user models.UserResponse, groupName string, share models.ShareTotal) {
	total := utils.RoundToTwo(share.Total)
	subject := fmt.Sprintf("%s settled up — your total is %.2f", groupName, total)
	plain := fmt.Sprintf("Hi %s, the group %q settled its purchases. Your total: %.2f.", user.Username, groupName, total)
	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f5f5f5;">
	<div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
		<h2 style="color: #1DB954; margin-top: 0;">✅ Costs settled</h2>
		<p>Hi <strong>%s</strong>,</p>
		<p>The purchases in <strong>%s</strong> were settled.</p>
		<div style="background: #f8f9fa; border-radius: 8px; padding: 16px; margin: 16px 0;">
			<p style="margin: 4px 0; font-size: 18px;"><strong>Your total: %.2f</strong></p>
		</div>
		<p style="color: #999; font-size: 12px; margin-top: 24px;">— %s</p>
	</div>
</body>
</html>`, user.Username, groupName, total, n.appName)

	n.send(user.Email, user.Username, subject, plain, html)
}
