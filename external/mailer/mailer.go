package mailer

import (
	"context"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/symtoscan/symtoscan-api/utils"
)

const logPrefix = "mailer"

// Mailer - interface to send transactional mail to account holders
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, lang, token string) error
}

type sendgridMailer struct {
	client *sendgrid.Client
}

// New - new Mailer backed by sendgrid
func New(apiKey string) Mailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
	}
}

// SendPasswordReset mails a single-use reset link. Subject and body are
// localized for the requester's language.
func (m *sendgridMailer) SendPasswordReset(ctx context.Context, email, lang, token string) error {
	loc := utils.NewLocalizer(lang)

	subject, err := loc.Localize(&i18n.LocalizeConfig{MessageID: "mail.password_reset.subject"})
	if err != nil {
		return err
	}

	body, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "mail.password_reset.body",
		TemplateData: map[string]string{
			"Link": fmt.Sprintf("%s/reset?token=%s", viper.GetString("server.weburl"), token),
		},
	})
	if err != nil {
		return err
	}

	message := mail.NewV3Mail()
	message.From = mail.NewEmail(viper.GetString("mail.sender.name"), viper.GetString("mail.sender.address"))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	personalization.To = append(personalization.To, mail.NewEmail("", email))
	message.Personalizations = append(message.Personalizations, personalization)
	message.Content = append(message.Content, mail.NewContent("text/plain", body))

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-2XX response while sending mail: %d", resp.StatusCode)
	}

	log.WithField("prefix", logPrefix).Info("sent password reset mail")
	return nil
}
