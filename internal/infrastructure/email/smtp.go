package email

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/tcworld/magadmin/internal/shared/config"
	"github.com/tcworld/magadmin/internal/shared/constants"
)

// Dialer delivers composed messages. *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPReportMailer struct {
	config sharedConfig.EmailConfig
	dialer Dialer
	now    func() time.Time
}

func NewSMTPReportMailer(config sharedConfig.EmailConfig) *SMTPReportMailer {
	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return NewSMTPReportMailerWithDialer(config, dialer)
}

func NewSMTPReportMailerWithDialer(config sharedConfig.EmailConfig, dialer Dialer) *SMTPReportMailer {
	return &SMTPReportMailer{
		config: config,
		dialer: dialer,
		now:    time.Now,
	}
}

// SendReport mails the label sheet as a PDF attachment.
func (s *SMTPReportMailer) SendReport(ctx context.Context, to, fileName string, pdf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	date := s.now().Format(constants.DateLayout)
	subject := fmt.Sprintf("Subscriber labels %s", date)
	plainBody := fmt.Sprintf(`
Hello,

The subscriber label sheet generated on %s is attached (%s).

Magazine Admin
	`, date, fileName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hello,</p>
			<p>The subscriber label sheet generated on %s is attached (<b>%s</b>).</p>
			<p>Magazine Admin</p>
		</body>
		</html>
	`, date, fileName)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	m.Attach(fileName,
		gomail.SetHeader(map[string][]string{"Content-Type": {constants.ContentTypePDF}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
	)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
