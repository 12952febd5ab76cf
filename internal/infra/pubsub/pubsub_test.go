package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"farmlink/config"
	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/constants"
	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *entity.DispatchEvent {
	return &entity.DispatchEvent{
		RequestID:      "req-123",
		NotificationID: uuid.New(),
		UID:            "buyer-1",
		Title:          "Packed",
		Body:           "Your order is packed",
		URL:            "https://farm.example.com/orders/1",
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := newTestEvent()

	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishDispatchEvent(context.Background(), event))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "req-123", received.RequestID())
	assert.Equal(t, event.NotificationID.String(), received.Message.MessageID)
	assert.Equal(t, "buyer-1", received.Message.Attributes[AttrUID])

	decoded, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_RedeliversOnServerError(t *testing.T) {
	localRetryBackoff = time.Millisecond
	t.Cleanup(func() { localRetryBackoff = 200 * time.Millisecond })

	tests := []struct {
		name         string
		statuses     []int
		wantErr      string
		wantAttempts int
	}{
		{name: "recovers after 503", statuses: []int{http.StatusServiceUnavailable, http.StatusOK}, wantAttempts: 2},
		{name: "gives up after max attempts", statuses: []int{503, 503, 503}, wantErr: "503", wantAttempts: localMaxAttempts},
		{name: "client error is final", statuses: []int{http.StatusBadRequest}, wantErr: "400", wantAttempts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			attempts := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				mu.Lock()
				defer mu.Unlock()
				w.WriteHeader(tt.statuses[attempts])
				attempts++
			}))
			defer server.Close()

			publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
			err := publisher.PublishDispatchEvent(context.Background(), newTestEvent())

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mu.Lock()
			assert.Equal(t, tt.wantAttempts, attempts)
			mu.Unlock()
		})
	}
}

func TestPushEnvelope_InvalidData(t *testing.T) {
	envelope := &PushEnvelope{}
	envelope.Message.Data = "%%%not-base64"

	_, err := envelope.Event()
	assert.Error(t, err)
}

func TestMemoryBus_DeliversAndRedelivers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bus := NewMemoryBus()
	publisher := NewMemoryPublisher(bus, discardLogger())
	event := newTestEvent()

	var mu sync.Mutex
	attempts := 0
	done := make(chan struct{})

	go func() {
		_ = bus.Receive(ctx, discardLogger(), func(_ context.Context, got *entity.DispatchEvent) bool {
			mu.Lock()
			defer mu.Unlock()

			assert.Equal(t, event.NotificationID, got.NotificationID)
			attempts++
			if attempts == 1 {
				return true
			}
			close(done)

			return false
		})
	}()

	require.NoError(t, publisher.PublishDispatchEvent(ctx, event))

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("event was not redelivered")
	}

	mu.Lock()
	assert.Equal(t, 2, attempts)
	mu.Unlock()

	cancel()
	require.NoError(t, bus.Shutdown(context.Background()))
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		bus     *MemoryBus
		publish bool
		wantErr bool
	}{
		{name: "not configured", cfg: nil, publish: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "dispatch"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "farmlink"}, wantErr: true},
		{name: "memory", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderMemory}, bus: NewMemoryBus(), publish: true},
		{name: "memory without bus", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderMemory}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
				Bus:    tt.bus,
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.publish {
				require.NoError(t, publisher.PublishDispatchEvent(context.Background(), newTestEvent()))
			}
		})
	}
}

func TestNewMemoryBusForConfig(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	assert.Nil(t, NewMemoryBusForConfig(lc, &config.Config{}))
	assert.NotNil(t, NewMemoryBusForConfig(lc, &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderMemory},
	}))
}
