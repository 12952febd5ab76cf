// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"farmlink/config"
	"farmlink/internal/domain/service"
	"farmlink/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// MaxBatchSize is the FCM limit of tokens per multicast request.
const MaxBatchSize = 500

// multicastSender is the part of the FCM client used by firebaseService.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// Params holds dependencies for the NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns the FCM sender, or a log-only sender when Firebase is not configured
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push messages will only be logged")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendBatchNotification sends push notifications to at most 500 tokens
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushResult, error) {
	if len(tokens) == 0 {
		return &service.PushResult{}, nil
	}
	if len(tokens) > MaxBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxBatchSize)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticast(tokens, msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	return classifyResponses(tokens, response.Responses, isPermanentTokenError), nil
}

// buildMulticast shapes the payload the service worker expects: notification{title, body} and data{url}.
func buildMulticast(tokens []string, msg service.PushMessage) *messaging.MulticastMessage {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
	}

	if msg.URL != "" {
		message.Data = map[string]string{"url": msg.URL}

		// FCM only accepts HTTPS click links
		if strings.HasPrefix(msg.URL, "https://") {
			message.Webpush = &messaging.WebpushConfig{
				FCMOptions: &messaging.WebpushFCMOptions{Link: msg.URL},
			}
		}
	}

	return message
}

func isPermanentTokenError(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

// classifyResponses maps per-token send responses, which FCM returns in token order.
func classifyResponses(tokens []string, responses []*messaging.SendResponse, isPermanent func(error) bool) *service.PushResult {
	result := &service.PushResult{}

	for idx, token := range tokens {
		if idx >= len(responses) || responses[idx] == nil {
			result.FailedTokens = append(result.FailedTokens, token)

			continue
		}

		resp := responses[idx]
		switch {
		case resp.Success && resp.Error == nil:
			result.SucceededTokens = append(result.SucceededTokens, token)
		case isPermanent(resp.Error):
			result.InvalidTokens = append(result.InvalidTokens, token)
		default:
			result.FailedTokens = append(result.FailedTokens, token)
		}
	}

	return result
}

// logOnlyService stands in for FCM in development
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendBatchNotification(_ context.Context, tokens []string, msg service.PushMessage) (*service.PushResult, error) {
	s.logger.Info("[LogOnlyPush] Skipping push delivery",
		slog.Int("token_count", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("url", msg.URL),
	)

	return &service.PushResult{SucceededTokens: tokens}, nil
}
