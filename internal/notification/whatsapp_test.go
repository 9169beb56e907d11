package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestNotifier(t *testing.T, apiURL, adminPhone string) *WhatsAppNotifier {
	t.Helper()
	n := NewWhatsAppNotifier(Config{
		APIURL:        apiURL,
		Token:         "test-token",
		PhoneNumberID: "12345",
		AdminPhone:    adminPhone,
	}, newTestLogger(t))
	n.strategy = retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}
	return n
}

func testRegistration() (*domain.Registration, *domain.Event) {
	reg := &domain.Registration{
		ID:            "r1",
		PaymentAmount: 199.50,
		Details: domain.ParticipantDetails{
			Name:  "Alex Rivera",
			Phone: "+15550001111",
		},
	}
	event := &domain.Event{
		ID:    "e1",
		Title: "Rock Crawl Weekend",
		Date:  time.Date(2025, 7, 12, 9, 0, 0, 0, time.UTC),
	}
	return reg, event
}

func TestWhatsAppNotifier_NotifyRegistration(t *testing.T) {
	var got textMessage
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/12345/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL, "")
	reg, event := testRegistration()

	require.NoError(t, n.NotifyRegistration(context.Background(), reg, event))

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "+15550001111", got.To)
	assert.Contains(t, got.Text.Body, "Rock Crawl Weekend")
	assert.Contains(t, got.Text.Body, "199.50")
}

func TestWhatsAppNotifier_NotifyRegistration_AdminCopy(t *testing.T) {
	var recipients []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg textMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		recipients = append(recipients, msg.To)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL, "+15559999999")
	reg, event := testRegistration()

	require.NoError(t, n.NotifyRegistration(context.Background(), reg, event))

	assert.Equal(t, []string{"+15550001111", "+15559999999"}, recipients)
}

func TestWhatsAppNotifier_NotifyRegistration_AdminCopyFailureSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg textMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		if msg.To == "+15559999999" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL, "+15559999999")
	reg, event := testRegistration()

	// The participant message went through; a failed admin copy is logged only.
	require.NoError(t, n.NotifyRegistration(context.Background(), reg, event))
}

func TestWhatsAppNotifier_NotifyContact(t *testing.T) {
	var got textMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL, "+15559999999")

	contact := &domain.Contact{
		ID:      "c1",
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: "Group booking",
		Message: "Do you run private trips?",
	}

	require.NoError(t, n.NotifyContact(context.Background(), contact))
	assert.Equal(t, "+15559999999", got.To)
	assert.Contains(t, got.Text.Body, "Group booking")
}

func TestWhatsAppNotifier_NotifyContact_NoAdminPhone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL, "")

	require.NoError(t, n.NotifyContact(context.Background(), &domain.Contact{ID: "c1"}))
}

func TestWhatsAppNotifier_Disabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier(Config{APIURL: srv.URL}, newTestLogger(t))
	reg, event := testRegistration()

	require.NoError(t, n.NotifyRegistration(context.Background(), reg, event))
}

func TestWhatsAppNotifier_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL, "")
	reg, event := testRegistration()

	require.NoError(t, n.NotifyRegistration(context.Background(), reg, event))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWhatsAppNotifier_GivesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := newTestNotifier(t, srv.URL, "")
	reg, event := testRegistration()

	err := n.NotifyRegistration(context.Background(), reg, event)

	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}
