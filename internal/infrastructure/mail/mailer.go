package mail

import (
	"bytes"
	"fmt"
	"html/template"

	mailv2 "gopkg.in/mail.v2"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	"github.com/gamevault/gamevault-backend/internal/domain/ports"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/config"
)

// SMTPMailer implementa ports.Mailer via gomail. O dialer é criado uma
// vez na inicialização e reutilizado pela vida do processo.
//
// Todo envio é assíncrono e best-effort: a goroutine loga a falha e o
// request que disparou o email nunca é bloqueado nem falha por causa dela.
type SMTPMailer struct {
	dialer  *mailv2.Dialer
	from    string
	baseURL string
	logger  ports.Logger
}

// NewSMTPMailer cria o mailer a partir da configuração SMTP
func NewSMTPMailer(cfg *config.SMTPConfig, baseURL string, logger ports.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer:  mailv2.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:    cfg.From,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (m *SMTPMailer) SendWelcome(email, name string) {
	m.sendAsync(email, "Welcome to GameVault", welcomeTemplate, map[string]any{
		"Name":     name,
		"StoreURL": m.baseURL,
	})
}

func (m *SMTPMailer) SendConfirmation(email, name, token string) {
	m.sendAsync(email, "Confirm Your Account", confirmationTemplate, map[string]any{
		"Name":       name,
		"ConfirmURL": fmt.Sprintf("%s/mail/verified-email/%s", m.baseURL, token),
	})
}

func (m *SMTPMailer) SendOrder(email, name string, orderID int64, lines []ports.OrderMailLine, total string) {
	type mailLine struct {
		Name     string
		Physical bool
	}

	hasPhysical := false
	mailLines := make([]mailLine, 0, len(lines))
	for _, l := range lines {
		physical := l.Type == entities.ProductTypePhysical
		hasPhysical = hasPhysical || physical
		mailLines = append(mailLines, mailLine{Name: l.Name, Physical: physical})
	}

	m.sendAsync(email, "Your Order Details at GameVault", orderTemplate, map[string]any{
		"Name":        name,
		"OrderID":     orderID,
		"Lines":       mailLines,
		"Total":       total,
		"HasPhysical": hasPhysical,
		"DeliverURL":  fmt.Sprintf("%s/orders/deliver/%d", m.baseURL, orderID),
	})
}

func (m *SMTPMailer) SendDelivered(email string) {
	m.sendAsync(email, "Thank You for Your Purchase!", deliveredTemplate, map[string]any{})
}

func (m *SMTPMailer) SendCoupon(email string, coupon *entities.Coupon) {
	m.sendAsync(email, "Congratulations! Here's Your Gift Coupon!", couponTemplate, map[string]any{
		"Code":           coupon.Code,
		"Discount":       coupon.DiscountPercentage,
		"ExpirationDate": coupon.ExpirationDate.Format("2006-01-02"),
	})
}

func (m *SMTPMailer) sendAsync(to, subject string, tmpl *template.Template, data map[string]any) {
	go func() {
		if err := m.send(to, subject, tmpl, data); err != nil {
			m.logger.Error("failed to send email",
				"to", to,
				"subject", subject,
				"error", err,
			)
			return
		}
		m.logger.Info("email sent", "to", to, "subject", subject)
	}()
}

func (m *SMTPMailer) send(to, subject string, tmpl *template.Template, data map[string]any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	msg := mailv2.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body.String())

	return m.dialer.DialAndSend(msg)
}
