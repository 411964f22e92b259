package services

import (
	"context"
	"encoding/json"
	"time"

	"cropai-modelhub/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const notificationKeyPrefix = "notifications:"

type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a transient toast message.
type Notification struct {
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
}

// RedisNotifier queues notifications for one client under a key that
// expires after ttl, so unread toasts disappear on their own.
type RedisNotifier struct {
	client   *redis.Client
	clientID string
	ttl      time.Duration
	log      *zap.Logger
}

func NewRedisNotifier(client *redis.Client, clientID string, ttl time.Duration) *RedisNotifier {
	return &RedisNotifier{
		client:   client,
		clientID: clientID,
		ttl:      ttl,
		log:      logger.Named("notifier"),
	}
}

func (n *RedisNotifier) Success(ctx context.Context, message string) {
	n.push(ctx, NotificationSuccess, message)
}

func (n *RedisNotifier) Error(ctx context.Context, message string) {
	n.push(ctx, NotificationError, message)
}

func (n *RedisNotifier) push(ctx context.Context, level NotificationLevel, message string) {
	payload, err := json.Marshal(Notification{Level: level, Message: message, CreatedAt: time.Now().UTC()})
	if err != nil {
		n.log.Error("Failed to encode notification", zap.Error(err))
		return
	}

	key := notificationKeyPrefix + n.clientID
	_, err = n.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		pipe.Expire(ctx, key, n.ttl)
		return nil
	})
	if err != nil {
		n.log.Warn("Failed to queue notification",
			zap.String("client_id", n.clientID),
			zap.String("message", message),
			zap.Error(err))
	}
}

// DrainNotifications returns and removes every queued notification for
// clientID, oldest first.
func DrainNotifications(ctx context.Context, client *redis.Client, clientID string) ([]Notification, error) {
	key := notificationKeyPrefix + clientID

	var lrange *redis.StringSliceCmd
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]Notification, 0, len(lrange.Val()))
	for _, raw := range lrange.Val() {
		var n Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// LogNotifier writes notifications to the structured log. The CLI uses it.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.Named("notifier")}
}

func (n *LogNotifier) Success(_ context.Context, message string) {
	n.log.Info(message, zap.String("level", string(NotificationSuccess)))
}

func (n *LogNotifier) Error(_ context.Context, message string) {
	n.log.Warn(message, zap.String("level", string(NotificationError)))
}
