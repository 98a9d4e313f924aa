package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dietwise/backend/internal/planner"
)

// DefaultPlanTTL bounds how long a generated plan stays addressable for
// slot repairs.
const DefaultPlanTTL = 24 * time.Hour

const planKeyPrefix = "dietwise:plan:"

// RedisPlanStore keeps serialized plans in Redis under a TTL.
type RedisPlanStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPlanStore creates a new RedisPlanStore instance. A non-positive
// ttl falls back to DefaultPlanTTL.
func NewRedisPlanStore(client *redis.Client, ttl time.Duration) *RedisPlanStore {
	if ttl <= 0 {
		ttl = DefaultPlanTTL
	}
	return &RedisPlanStore{client: client, ttl: ttl}
}

// SavePlan stores the plan JSON under its id, refreshing the TTL.
func (s *RedisPlanStore) SavePlan(ctx context.Context, plan *planner.WeeklyPlan) error {
	if plan.ID == "" {
		return errors.New("plan has no id")
	}
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshaling plan %s: %w", plan.ID, err)
	}
	return s.client.Set(ctx, planKeyPrefix+plan.ID, payload, s.ttl).Err()
}

// GetPlan loads a plan by id, mapping cache misses to ErrPlanNotFound.
func (s *RedisPlanStore) GetPlan(ctx context.Context, id string) (*planner.WeeklyPlan, error) {
	payload, err := s.client.Get(ctx, planKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	var plan planner.WeeklyPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("unmarshaling plan %s: %w", id, err)
	}
	return &plan, nil
}
