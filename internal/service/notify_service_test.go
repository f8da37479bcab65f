package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/tkexclusiv/catalog_api/internal/config"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

type fakeMailer struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg *mail.Msg) error {
	f.sent = append(f.sent, msg)
	return f.err
}

var testMailConfig = &config.MailConfig{
	From:       "noreply@example.com",
	Recipients: []string{"info@example.com", "sales@example.com"},
}

func TestNotifyStockSendsToRecipients(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotifyService(mailer, testMailConfig)

	err := svc.NotifyStock(context.Background(), NotifyInput{ProductName: "Pump X", Email: "c@example.com"})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)

	rcpts, err := mailer.sent[0].GetRecipients()
	require.NoError(t, err)
	assert.ElementsMatch(t, testMailConfig.Recipients, rcpts)
	assert.Equal(t, []string{"Запрос на поступление товара: Pump X"}, mailer.sent[0].GetGenHeader(mail.HeaderSubject))
}

func TestNotifyStockSwallowsDeliveryFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("connection refused")}
	svc := NewNotifyService(mailer, testMailConfig)

	err := svc.NotifyStock(context.Background(), NotifyInput{ProductName: "Pump X", Email: "c@example.com"})
	assert.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
}

func TestNotifyStockValidation(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotifyService(mailer, testMailConfig)

	err := svc.NotifyStock(context.Background(), NotifyInput{ProductName: "  ", Email: "c@example.com"})
	require.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "Product name and email are required", err.Error())

	err = svc.NotifyStock(context.Background(), NotifyInput{ProductName: "Pump"})
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Empty(t, mailer.sent)
}

func TestRenderStockEmail(t *testing.T) {
	text, html, err := renderStockEmail(NotifyInput{
		ProductName: `<script>alert("x")</script>`,
		Email:       "c@example.com",
	})
	require.NoError(t, err)

	assert.Contains(t, text, `Товар: <script>alert("x")</script>`)
	assert.NotContains(t, text, "Телефон")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "mailto:c@example.com")

	text, html, err = renderStockEmail(NotifyInput{ProductName: "Pump", Email: "c@example.com", Phone: "+79001234567"})
	require.NoError(t, err)
	assert.Contains(t, text, "Телефон: +79001234567")
	assert.Contains(t, html, "tel:+79001234567")
}
