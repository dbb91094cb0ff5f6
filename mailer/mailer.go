package mailer

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"bonded-wms/services"

	"gopkg.in/gomail.v2"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       []string
}

// Sender delivers built messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewDialer(cfg Config) *gomail.Dialer {
	return gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
}

// ExpiryReminder builds the bond license expiry mail. It returns nil when
// there is nothing to report.
func ExpiryReminder(cfg Config, licenses []services.ExpiringLicense, today time.Time) *gomail.Message {
	if len(licenses) == 0 {
		return nil
	}

	var rows strings.Builder
	for _, l := range licenses {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>\n",
			html.EscapeString(l.License.LicenseNumber),
			html.EscapeString(l.WarehouseName),
			l.License.ExpiryDate.String(),
			l.DaysLeft)
	}

	subject := fmt.Sprintf("Bond licenses expiring soon (%d)", len(licenses))
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Bond licenses expiring soon</h3>
				<p>As of %s the following bond licenses are close to expiry.</p>
				<table border="1" cellpadding="4" cellspacing="0">
					<tr><th>License</th><th>Warehouse</th><th>Expiry date</th><th>Days left</th></tr>
					%s
				</table>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, today.Format("2006-01-02"), rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.From)
	msg.SetHeader("To", cfg.To...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return msg
}

// SendExpiryReminder mails the reminder when there is at least one
// license to report. It reports whether a mail went out.
func SendExpiryReminder(sender Sender, cfg Config, licenses []services.ExpiringLicense, today time.Time) (bool, error) {
	msg := ExpiryReminder(cfg, licenses, today)
	if msg == nil {
		return false, nil
	}
	if len(cfg.To) == 0 {
		return false, errors.New("no reminder recipients configured")
	}
	if err := sender.DialAndSend(msg); err != nil {
		return false, fmt.Errorf("send expiry reminder: %w", err)
	}
	return true, nil
}
