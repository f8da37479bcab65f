package service

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"

	"github.com/tkexclusiv/catalog_api/internal/config"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

type NotifyInput struct {
	ProductName string `json:"productName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

var stockTextTemplate = texttemplate.Must(texttemplate.New("stock.txt").Parse(`Новый запрос на уведомление о поступлении

Товар: {{.ProductName}}
Email клиента: {{.Email}}
{{if .Phone}}Телефон: {{.Phone}}
{{end}}
Когда товар появится в наличии, уведомите клиента по указанным контактам.
`))

var stockHTMLTemplate = htmltemplate.Must(htmltemplate.New("stock.html").Parse(`<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
      <h2 style="color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px;">Новый запрос на уведомление о поступлении</h2>
      <div style="margin: 20px 0;">
        <p style="margin: 10px 0;"><strong>Товар:</strong> {{.ProductName}}</p>
        <p style="margin: 10px 0;"><strong>Email клиента:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
        {{if .Phone}}<p style="margin: 10px 0;"><strong>Телефон:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>{{end}}
      </div>
      <div style="background-color: #f3f4f6; padding: 15px; border-radius: 6px; margin-top: 20px;">
        <p style="margin: 0; font-size: 14px; color: #6b7280;"><strong>Что делать:</strong> Когда товар появится в наличии, уведомите клиента по указанным контактам.</p>
      </div>
      <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 12px; color: #9ca3af;">
        <p>Это автоматическое уведомление с сайта ТК Эксклюзив</p>
      </div>
    </div>
  </body>
</html>
`))

// NotifyService forwards "notify me when in stock" requests to the shop's
// mailboxes. Delivery is best effort: failures are logged and never reach
// the caller.
type NotifyService struct {
	mailer     Mailer
	from       string
	recipients []string
}

func NewNotifyService(mailer Mailer, cfg *config.MailConfig) *NotifyService {
	return &NotifyService{mailer: mailer, from: cfg.From, recipients: cfg.Recipients}
}

func (s *NotifyService) NotifyStock(ctx context.Context, in NotifyInput) error {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.ProductName == "" || in.Email == "" {
		return utils.NewValidationError("Product name and email are required")
	}

	msg, err := s.compose(in)
	if err != nil {
		log.Error().Err(err).Str("product", in.ProductName).Msg("Failed to compose stock notification")
		return nil
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Warn().Err(err).Str("product", in.ProductName).Msg("Stock notification not delivered")
		return nil
	}

	log.Info().Str("product", in.ProductName).Msg("Stock notification sent")
	return nil
}

func (s *NotifyService) compose(in NotifyInput) (*mail.Msg, error) {
	text, html, err := renderStockEmail(in)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, err
	}
	if err := msg.To(s.recipients...); err != nil {
		return nil, err
	}
	msg.Subject("Запрос на поступление товара: " + in.ProductName)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)
	return msg, nil
}

// renderStockEmail returns the plain text and HTML bodies. User input is
// escaped in the HTML part.
func renderStockEmail(in NotifyInput) (string, string, error) {
	var text, html bytes.Buffer
	if err := stockTextTemplate.Execute(&text, in); err != nil {
		return "", "", err
	}
	if err := stockHTMLTemplate.Execute(&html, in); err != nil {
		return "", "", err
	}
	return text.String(), html.String(), nil
}
