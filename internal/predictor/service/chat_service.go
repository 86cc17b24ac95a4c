package service

import (
	"context"
	"strings"

	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/pkg/logger"
)

// ChatService maps visitor messages to canned replies. It is a fixed
// substring-match lookup table, not a dialogue engine: no state, no
// learning, first matching intent wins.
type ChatService interface {
	Reply(ctx context.Context, message string) *dto.ChatResponse
}

// NewChatService creates the scripted chat service.
func NewChatService(log *logger.Logger) ChatService {
	return &chatService{
		logger:  log,
		intents: defaultIntents(),
	}
}

type chatIntent struct {
	tag      string
	keywords []string
	reply    string
}

type chatService struct {
	logger  *logger.Logger
	intents []chatIntent
}

// Reply returns the canned response for the first matched intent, or the
// default response when nothing matches.
func (s *chatService) Reply(ctx context.Context, message string) *dto.ChatResponse {
	normalized := strings.ToLower(message)
	for _, intent := range s.intents {
		for _, keyword := range intent.keywords {
			if strings.Contains(normalized, keyword) {
				s.logger.DebugContext(ctx, "Chat intent matched", logger.Field("intent", intent.tag))
				return &dto.ChatResponse{Intent: intent.tag, Reply: intent.reply}
			}
		}
	}
	return &dto.ChatResponse{
		Intent: "default",
		Reply:  "I can tell you about our prediction models, their accuracy, supported horizons, and how forecasts are generated. What would you like to know?",
	}
}

func defaultIntents() []chatIntent {
	return []chatIntent{
		{
			tag:      "greeting",
			keywords: []string{"hello", "hi ", "hey"},
			reply:    "Hello! Ask me anything about the stock prediction service.",
		},
		{
			tag:      "models",
			keywords: []string{"model", "lstm", "gru", "ensemble"},
			reply:    "We serve three models: LSTM, GRU, and an ensemble combining both with a transformer. The ensemble is the most accurate at 92.1%.",
		},
		{
			tag:      "accuracy",
			keywords: []string{"accuracy", "accurate", "confidence", "reliable"},
			reply:    "Backtested accuracy ranges from 85.2% (GRU) to 92.1% (ensemble). Every prediction carries its own confidence score.",
		},
		{
			tag:      "horizon",
			keywords: []string{"horizon", "days", "how far", "future"},
			reply:    "Forecasts cover 1, 3, 7, 14, or 30 days ahead. Shorter horizons are generally more reliable.",
		},
		{
			tag:      "how_it_works",
			keywords: []string{"how", "work", "predict"},
			reply:    "We feed five years of daily prices through a recurrent neural network with a 100-day sliding window and project the close price forward over your chosen horizon.",
		},
		{
			tag:      "tickers",
			keywords: []string{"ticker", "symbol", "stock", "support"},
			reply:    "Any US-listed ticker works, for example AAPL, MSFT, or TSLA. Check /api/v1/stocks/popular for suggestions.",
		},
	}
}
