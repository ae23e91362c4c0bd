package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {}
func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingLogger) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := &recordingLogger{}
	c := NewClient(5*time.Second, log)
	c.apiBase = srv.URL
	return c, log
}

func TestSendMessageSuccess(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true}`)
	})

	err := c.SendMessage(context.Background(), "TOKEN", "42", "Привет")
	require.NoError(t, err)
	assert.Empty(t, log.errors)
}

func TestSendMessageBadStatusLogged(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.SendMessage(context.Background(), "TOKEN", "42", "Привет")
	assert.ErrorIs(t, err, ErrInvalidResponse)
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "502")
}

func TestSendMessageAPIErrorLogged(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":false,"error_code":403,"description":"bot was blocked"}`)
	})

	err := c.SendMessage(context.Background(), "TOKEN", "42", "Привет")
	assert.ErrorIs(t, err, ErrInvalidResponse)
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "bot was blocked")
}

func TestSendMessageTransportErrorLogged(t *testing.T) {
	log := &recordingLogger{}
	c := NewClient(time.Second, log)
	c.apiBase = "http://127.0.0.1:1"

	err := c.SendMessage(context.Background(), "TOKEN", "42", "Привет")
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotEmpty(t, log.errors)
}
