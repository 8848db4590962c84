package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"readycleans/models"

	"go.uber.org/zap"
)

const systemPrompt = `You are a helpful AI assistant for ReadyCleans, a professional cleaning service specializing in Standard residential cleans and Airbnb turnover cleaning in Phoenix, AZ.
- Standard Cleans: Start at $125 for Studio, up to $450 for 5 Bed / 3 Bath
- Airbnb Turnovers: Start at $80 for Studio, up to $450 for 5 Bed / 3 Bath
- Add-ons: Oven ($35), Fridge ($35), Windows ($35), Same-Day ($75)
- We cover all standard points: Kitchen, Bathrooms, Floors, Baseboards.
- 100% Satisfaction Guarantee - if you fail an inspection due to cleaning, we return for free.
- We do NOT move heavy furniture or remove junk.
- Service available 7 days a week.
Be friendly, professional, and concise. Direct users to book at readycleans.space/booking.`

const primerAck = "Understood. I am ready to help customers with ReadyCleans inquiries."

var (
	ErrEmptyMessage  = errors.New("message is required")
	ErrNotConfigured = errors.New("gemini API key not configured")
)

// ChatModel is the part of the LLM client the chat service needs.
type ChatModel interface {
	Chat(ctx context.Context, history []Turn, message string) (string, error)
}

// ChatNotifier is told about every answered message.
type ChatNotifier interface {
	NotifyChat(ctx context.Context, customerMessage, aiResponse string, messageNumber int) error
}

type ChatService interface {
	Reply(ctx context.Context, req models.ChatRequest) (string, error)
}

// DefaultChatService answers site chat messages through the model and
// forwards each exchange to the notifier in the background.
type DefaultChatService struct {
	model    ChatModel
	notifier ChatNotifier
	logger   *zap.Logger
	wg       sync.WaitGroup
}

// NewDefaultChatService accepts a nil model (replies fail with
// ErrNotConfigured) and a nil notifier (no notifications).
func NewDefaultChatService(model ChatModel, notifier ChatNotifier, logger *zap.Logger) *DefaultChatService {
	return &DefaultChatService{
		model:    model,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *DefaultChatService) Reply(ctx context.Context, req models.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", ErrEmptyMessage
	}
	if s.model == nil {
		return "", ErrNotConfigured
	}

	text, err := s.model.Chat(ctx, buildHistory(req.History), req.Message)
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}

	s.notify(req.Message, text, len(req.History)+1)
	return text, nil
}

// Wait blocks until background notifications have finished.
func (s *DefaultChatService) Wait() {
	s.wg.Wait()
}

func (s *DefaultChatService) notify(message, reply string, n int) {
	if s.notifier == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notifier.NotifyChat(ctx, message, reply, n); err != nil {
			s.logger.Warn("chat notification failed", zap.Error(err))
		}
	}()
}

// buildHistory primes the model with the system prompt, then replays the
// widget history. Anything not sent by the user counts as the model.
func buildHistory(history []models.ChatMessage) []Turn {
	turns := make([]Turn, 0, len(history)+2)
	turns = append(turns,
		Turn{Role: RoleUser, Text: systemPrompt},
		Turn{Role: RoleModel, Text: primerAck},
	)
	for _, m := range history {
		role := RoleModel
		if m.IsUser() {
			role = RoleUser
		}
		turns = append(turns, Turn{Role: role, Text: m.Text})
	}
	return turns
}
