package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyStockSucceedsWhenMailFails(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, request{method: http.MethodPost, target: "/notify-stock",
		body: `{"productName":"Pump","email":"c@example.com","phone":"+79000000000"}`})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Notification request received", body["message"])
	assert.Equal(t, 1, s.mailer.attempts)
}

func TestNotifyStockValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, request{method: http.MethodPost, target: "/notify-stock", body: `{"productName":"Pump"}`})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Product name and email are required", decode(t, w)["error"])

	w = s.do(t, request{method: http.MethodGet, target: "/notify-stock"})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Zero(t, s.mailer.attempts)
}
