package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"salon-reservas/internal/pkg/config"
)

// SendGridMailer sends the transactional emails of the booking flow:
// reservation confirmations with the contract attached and password
// reset links.
type SendGridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridMailer(cfg config.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		apiKey:    cfg.SendGridAPIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (m *SendGridMailer) SendReservationConfirmed(_ context.Context, toEmail, name, eventDate string, contractPDF []byte) error {
	subject := "¡Tu reserva está confirmada!"
	plainText := fmt.Sprintf(
		"Hola %s. Tu reserva para el día %s fue confirmada. Adjuntamos el contrato de alquiler.",
		name, eventDate,
	)
	htmlContent := fmt.Sprintf(
		`<p>Hola <strong>%s</strong>,</p>
<p>Tu reserva para el día <strong>%s</strong> fue confirmada.</p>
<p>Adjuntamos el contrato de alquiler con los términos aceptados.</p>
<p>¡Te esperamos!</p>`,
		name, eventDate,
	)

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(m.fromName, m.fromEmail),
		subject,
		sgmail.NewEmail(name, toEmail),
		plainText,
		htmlContent,
	)

	attachment := sgmail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(contractPDF))
	attachment.SetType("application/pdf")
	attachment.SetFilename("contrato_alquiler.pdf")
	attachment.SetDisposition("attachment")
	message.AddAttachment(attachment)

	return m.send(message)
}

func (m *SendGridMailer) SendPasswordReset(_ context.Context, toEmail, name, resetURL string) error {
	subject := "Restablecer tu contraseña"
	plainText := fmt.Sprintf(
		"Hola %s. Para restablecer tu contraseña visitá: %s. El enlace vence en 30 minutos.",
		name, resetURL,
	)
	htmlContent := fmt.Sprintf(
		`<p>Hola <strong>%s</strong>,</p>
<p>Recibimos un pedido para restablecer tu contraseña.</p>
<p><a href="%s">Hacé clic acá para elegir una nueva</a>. El enlace vence en 30 minutos.</p>
<p>Si no fuiste vos, ignorá este mensaje.</p>`,
		name, resetURL,
	)

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(m.fromName, m.fromEmail),
		subject,
		sgmail.NewEmail(name, toEmail),
		plainText,
		htmlContent,
	)

	return m.send(message)
}

func (m *SendGridMailer) send(message *sgmail.SGMailV3) error {
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
