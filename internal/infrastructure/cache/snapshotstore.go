package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"billu/internal/application/admin/dto"
	"billu/internal/shared/logger"
)

const snapshotKey = "billu:admin:overview"

// SnapshotStore keeps the latest overview snapshot in redis with an
// in-process fallback copy, so reads survive a redis outage between polls.
type SnapshotStore struct {
	client *redis.Client
	logger logger.Interface

	mu       sync.RWMutex
	fallback *dto.OverviewSnapshot
}

func NewSnapshotStore(client *redis.Client, logger logger.Interface) *SnapshotStore {
	return &SnapshotStore{client: client, logger: logger}
}

// Save writes the snapshot to redis and refreshes the fallback copy.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *dto.OverviewSnapshot, ttl time.Duration) error {
	s.mu.Lock()
	s.fallback = snapshot
	s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, snapshotKey, payload, ttl).Err(); err != nil {
		s.logger.Warnw("failed to cache overview snapshot in redis", "error", err)
	}
	return nil
}

// Latest prefers redis so multiple instances share one snapshot, and falls
// back to the in-process copy.
func (s *SnapshotStore) Latest(ctx context.Context) (*dto.OverviewSnapshot, error) {
	if s.client != nil {
		payload, err := s.client.Get(ctx, snapshotKey).Bytes()
		if err == nil {
			var snapshot dto.OverviewSnapshot
			if err := json.Unmarshal(payload, &snapshot); err == nil {
				return &snapshot, nil
			}
		} else if err != redis.Nil {
			s.logger.Warnw("failed to read overview snapshot from redis", "error", err)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback, nil
}
