package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP. When SMTP credentials are not
// configured it simulates the send by logging the message and reporting
// success, so development environments work without a mail provider.
type Mailer struct {
	host      string
	port      int
	email     string
	password  string
	fromName  string
	fromEmail string
	logger    *zap.Logger
}

func New(host string, port int, email, password, fromName, fromEmail string, logger *zap.Logger) *Mailer {
	return &Mailer{
		host:      host,
		port:      port,
		email:     email,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
		logger:    logger.Named("Mailer"),
	}
}

func (m *Mailer) configured() bool {
	return m.email != "" && m.email != "your_username"
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.configured() {
		m.logger.Warn("SMTP not configured, simulating email send",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.email, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.logger.Error("Failed to send email", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return err
	}
	m.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
