package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"summit-sheriff/recruiting/internal/logging"
)

// RedisQueueService provides queue functionality using Redis Streams
type RedisQueueService struct {
	client *redis.Client
}

func NewRedisQueueService(client *redis.Client) *RedisQueueService {
	return &RedisQueueService{
		client: client,
	}
}

// EngagementEvent is a gamification event pushed by the services and
// consumed asynchronously (metrics, cache warming). The synchronous
// award path never depends on the queue.
type EngagementEvent struct {
	Type       string    `json:"type"` // points_awarded, badge_awarded, game_completed, game_shared, donation_recorded
	UserID     string    `json:"user_id"`
	Action     string    `json:"action,omitempty"`
	BadgeType  string    `json:"badge_type,omitempty"`
	Points     int       `json:"points,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Ping verifies the Redis connection, used by the health endpoint.
func (s *RedisQueueService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// EnqueueEvent adds an engagement event to the stream.
func (s *RedisQueueService) EnqueueEvent(ctx context.Context, streamName string, event *EngagementEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal engagement event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: streamName,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}

	if _, err := s.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to add to stream: %w", err)
	}

	return nil
}

// DequeueEvent reads one event from the stream using a consumer group.
// Returns (event, messageID, error); a nil event means timeout.
func (s *RedisQueueService) DequeueEvent(ctx context.Context, streamName, groupName, consumerName string, blockTime time.Duration) (*EngagementEvent, string, error) {
	args := &redis.XReadGroupArgs{
		Group:    groupName,
		Consumer: consumerName,
		Streams:  []string{streamName, ">"}, // ">" means new messages only
		Count:    1,
		Block:    blockTime,
	}

	streams, err := s.client.XReadGroup(ctx, args).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to read from stream: %w", err)
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, "", nil
	}

	msg := streams[0].Messages[0]

	dataStr, ok := msg.Values["data"].(string)
	if !ok {
		return nil, "", fmt.Errorf("invalid message format: data field missing")
	}

	var event EngagementEvent
	if err := json.Unmarshal([]byte(dataStr), &event); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal engagement event: %w", err)
	}

	return &event, msg.ID, nil
}

// AckEvent acknowledges successful processing of a message
func (s *RedisQueueService) AckEvent(ctx context.Context, streamName, groupName, messageID string) error {
	return s.client.XAck(ctx, streamName, groupName, messageID).Err()
}

// CreateConsumerGroup creates a consumer group for the stream if it doesn't exist
func (s *RedisQueueService) CreateConsumerGroup(ctx context.Context, streamName, groupName string) error {
	err := s.client.XGroupCreateMkStream(ctx, streamName, groupName, "0").Err()
	if err != nil && err.Error() == "BUSYGROUP Consumer Group name already exists" {
		return nil
	}
	return err
}

// GetQueueLength returns the number of messages in the stream
func (s *RedisQueueService) GetQueueLength(ctx context.Context, streamName string) (int64, error) {
	length, err := s.client.XLen(ctx, streamName).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return length, nil
}

// TrimStream keeps only the most recent maxLen messages.
func (s *RedisQueueService) TrimStream(ctx context.Context, streamName string, maxLen int64) error {
	return s.client.XTrimMaxLen(ctx, streamName, maxLen).Err()
}

// ClaimStaleEvents claims messages pending longer than minIdleTime
// (likely from dead workers) so they are not lost.
func (s *RedisQueueService) ClaimStaleEvents(ctx context.Context, streamName, groupName, consumerName string, minIdleTime time.Duration) ([]*EngagementEvent, []string, error) {
	pending, err := s.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: streamName,
		Group:  groupName,
		Start:  "-",
		End:    "+",
		Count:  100,
	}).Result()

	if err != nil {
		return nil, nil, fmt.Errorf("failed to get pending messages: %w", err)
	}

	if len(pending) == 0 {
		return nil, nil, nil
	}

	var staleIDs []string
	for _, p := range pending {
		if p.Idle >= minIdleTime {
			staleIDs = append(staleIDs, p.ID)
		}
	}

	if len(staleIDs) == 0 {
		return nil, nil, nil
	}

	messages, err := s.client.XClaim(ctx, &redis.XClaimArgs{
		Stream:   streamName,
		Group:    groupName,
		Consumer: consumerName,
		MinIdle:  minIdleTime,
		Messages: staleIDs,
	}).Result()

	if err != nil {
		return nil, nil, fmt.Errorf("failed to claim stale messages: %w", err)
	}

	var events []*EngagementEvent
	var messageIDs []string
	for _, msg := range messages {
		dataStr, ok := msg.Values["data"].(string)
		if !ok {
			continue
		}

		var event EngagementEvent
		if err := json.Unmarshal([]byte(dataStr), &event); err != nil {
			logging.Warn("Failed to unmarshal claimed engagement event", "error", err.Error())
			continue
		}

		events = append(events, &event)
		messageIDs = append(messageIDs, msg.ID)
	}

	return events, messageIDs, nil
}
