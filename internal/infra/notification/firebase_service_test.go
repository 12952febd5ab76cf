package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmlink/config"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPermanent = errors.New("registration-token-not-registered")

type fakeSender struct {
	message  *messaging.MulticastMessage
	response *messaging.BatchResponse
	err      error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.message = message

	return f.response, f.err
}

func TestClassifyResponses(t *testing.T) {
	tokens := []string{"token-ok-0001", "token-gone-001", "token-flaky-01", "token-missing"}
	responses := []*messaging.SendResponse{
		{Success: true, MessageID: "m1"},
		{Error: errPermanent},
		{Error: errors.New("internal error")},
	}

	result := classifyResponses(tokens, responses, func(err error) bool {
		return errors.Is(err, errPermanent)
	})

	assert.Equal(t, []string{"token-ok-0001"}, result.SucceededTokens)
	assert.Equal(t, []string{"token-gone-001"}, result.InvalidTokens)
	assert.Equal(t, []string{"token-flaky-01", "token-missing"}, result.FailedTokens)
}

func TestFirebaseService_SendBatchNotification(t *testing.T) {
	sender := &fakeSender{
		response: &messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true},
				{Error: errors.New("unavailable")},
			},
		},
	}
	svc := &firebaseService{client: sender}

	result, err := svc.SendBatchNotification(context.Background(), []string{"aaaaaaaaaa", "bbbbbbbbbb"}, service.PushMessage{
		Title: "Packed",
		Body:  "Your order is packed",
		URL:   "https://farm.example.com/orders/1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"aaaaaaaaaa"}, result.SucceededTokens)
	assert.Equal(t, []string{"bbbbbbbbbb"}, result.FailedTokens)
	require.NotNil(t, sender.message)
	assert.Equal(t, "Packed", sender.message.Notification.Title)
	assert.Equal(t, "https://farm.example.com/orders/1", sender.message.Data["url"])
	assert.Equal(t, "https://farm.example.com/orders/1", sender.message.Webpush.FCMOptions.Link)
}

func TestFirebaseService_SendBatchNotification_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty batch", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{}}

		result, err := svc.SendBatchNotification(ctx, nil, service.PushMessage{})
		require.NoError(t, err)
		assert.Empty(t, result.SucceededTokens)
	})

	t.Run("batch too large", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{}}

		_, err := svc.SendBatchNotification(ctx, make([]string, MaxBatchSize+1), service.PushMessage{})
		assert.Error(t, err)
	})

	t.Run("transport failure", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{err: errors.New("dial tcp: timeout")}}

		_, err := svc.SendBatchNotification(ctx, []string{"aaaaaaaaaa"}, service.PushMessage{})
		assert.Error(t, err)
	})
}

func TestBuildMulticast_InsecureLinkOnlyInData(t *testing.T) {
	message := buildMulticast([]string{"aaaaaaaaaa"}, service.PushMessage{URL: "http://localhost:3000/orders/1"})

	assert.Equal(t, "http://localhost:3000/orders/1", message.Data["url"])
	assert.Nil(t, message.Webpush)
}

func TestNewNotificationService_FallsBackToLogOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewNotificationService(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: logger,
	})
	require.NoError(t, err)

	result, err := svc.SendBatchNotification(context.Background(), []string{"aaaaaaaaaa"}, service.PushMessage{Title: "hi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"aaaaaaaaaa"}, result.SucceededTokens)
}
