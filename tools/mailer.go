package tools

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// Mailer envia e-mails transacionais via SMTP.
type Mailer struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func (m Mailer) configured() bool {
	return strings.TrimSpace(m.Host) != "" && strings.TrimSpace(m.From) != ""
}

// SendPasswordResetCode envia o código de recuperação de senha.
func (m Mailer) SendPasswordResetCode(toEmail string, userName string, code string) error {
	if !m.configured() {
		return fmt.Errorf("smtp não configurado")
	}
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("destinatário vazio")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "AgendAI - Código de Recuperação de Senha")
	msg.SetBody("text/html", buildResetBody(userName, code))

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("falha ao enviar e-mail: %w", err)
	}
	return nil
}

func buildResetBody(userName string, code string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #333;">Olá, %s!</h2>
    <p>Você solicitou a recuperação de senha da sua conta AgendAI.</p>
    <p>Use o código abaixo para redefinir sua senha:</p>
    <div style="background-color: #f5f5f5; padding: 20px; text-align: center; margin: 20px 0; border-radius: 8px;">
        <span style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #333;">%s</span>
    </div>
    <p style="color: #666;">Este código é válido por <strong>10 minutos</strong>.</p>
    <p style="color: #666;">Se você não solicitou essa recuperação, ignore este email.</p>
    <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
    <p style="color: #999; font-size: 12px;">AgendAI - Sistema de Agendamento</p>
</div>`, userName, code)
}
