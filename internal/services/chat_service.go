package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"summit-sheriff/recruiting/internal/common"
	"summit-sheriff/recruiting/internal/constants"
	"summit-sheriff/recruiting/internal/metrics"
	"summit-sheriff/recruiting/internal/models/dtos"
)

// chatSessionTTL bounds how long an anonymous visitor's free-question
// marker lives.
const chatSessionTTL = 24 * time.Hour

type ChatService struct {
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewChatService(cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *ChatService {
	return &ChatService{
		cache:   cache,
		metrics: metricsReg,
	}
}

// Respond matches the visitor's message against the knowledge base.
// Anonymous visitors get one free answer per chat session; after that
// every message returns the registration prompt until they sign in.
func (s *ChatService) Respond(ctx context.Context, authenticated bool, sessionID string, req *dtos.ChatMessageReq) (*dtos.ChatMessageResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if sessionID == "" {
		sessionID = req.SessionID
	}

	if !authenticated && s.freeQuestionSpent(sessionID) {
		if s.metrics != nil {
			s.metrics.ChatMessagesTotal.WithLabelValues(chatRegisterPrompt.Topic).Inc()
		}
		return &dtos.ChatMessageResponse{
			Reply:        chatRegisterPrompt.Reply,
			QuickReplies: chatRegisterPrompt.QuickReplies,
			Topic:        chatRegisterPrompt.Topic,
			RequiresAuth: true,
		}, nil
	}

	topic := matchTopic(message)
	if !authenticated {
		s.markFreeQuestionSpent(sessionID)
	}

	if s.metrics != nil {
		s.metrics.ChatMessagesTotal.WithLabelValues(topic.Topic).Inc()
	}

	return &dtos.ChatMessageResponse{
		Reply:        topic.Reply,
		QuickReplies: topic.QuickReplies,
		Topic:        topic.Topic,
	}, nil
}

func matchTopic(message string) *ChatTopic {
	lowered := strings.ToLower(message)
	for i := range chatTopics {
		for _, keyword := range chatTopics[i].Keywords {
			if strings.Contains(lowered, keyword) {
				return &chatTopics[i]
			}
		}
	}
	return &chatFallback
}

func (s *ChatService) freeQuestionSpent(sessionID string) bool {
	if s.cache == nil || sessionID == "" {
		return false
	}
	_, found := s.cache.Get(string(constants.CachePrefixChatSession) + sessionID)
	return found
}

func (s *ChatService) markFreeQuestionSpent(sessionID string) {
	if s.cache == nil || sessionID == "" {
		return
	}
	s.cache.Set(string(constants.CachePrefixChatSession)+sessionID, true, chatSessionTTL)
}
