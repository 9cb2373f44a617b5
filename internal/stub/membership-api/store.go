// internal/stub/membership-api/store.go
package membershipapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"membership-portal/internal/common/database"
	"membership-portal/internal/models"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrMemberNotFound = errors.New("member not found")
)

const (
	memberCounterKey = "membership:member_counter"
	memberKeyPrefix  = "membership:member:"
	emailKeyPrefix   = "membership:email:"
	recordTypeMember = "MEMBER"
)

// Store persists accepted applications. Emails are unique, case-insensitively.
type Store interface {
	Create(ctx context.Context, form models.ApplicationForm) (*models.MemberRecord, error)
	Get(ctx context.Context, memberID string) (*models.MemberRecord, error)
}

// FormatMemberID renders the sequential member id, e.g. MEMBER#000001.
func FormatMemberID(n int64) string {
	return fmt.Sprintf("MEMBER#%06d", n)
}

func newRecord(form models.ApplicationForm, n int64) *models.MemberRecord {
	return &models.MemberRecord{
		ApplicationForm:  form,
		MemberID:         FormatMemberID(n),
		ApplicationID:    uuid.NewString(),
		MembershipStatus: models.MembershipStatusPending,
		RecordType:       recordTypeMember,
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ==========================
// In-memory store
// ==========================

type MemoryStore struct {
	mu      sync.RWMutex
	counter int64
	members map[string]*models.MemberRecord
	emails  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members: make(map[string]*models.MemberRecord),
		emails:  make(map[string]string),
	}
}

func (s *MemoryStore) Create(_ context.Context, form models.ApplicationForm) (*models.MemberRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(form.Email)
	if _, exists := s.emails[key]; exists {
		return nil, ErrDuplicateEmail
	}

	s.counter++
	record := newRecord(form, s.counter)
	s.members[record.MemberID] = record
	s.emails[key] = record.MemberID

	copied := *record
	return &copied, nil
}

func (s *MemoryStore) Get(_ context.Context, memberID string) (*models.MemberRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.members[memberID]
	if !ok {
		return nil, ErrMemberNotFound
	}
	copied := *record
	return &copied, nil
}

// ==========================
// Redis store
// ==========================

// redisCommands is the subset of database.RedisClient the store issues.
type redisCommands interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Incr(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, keys ...string) error
}

type RedisStore struct {
	redis redisCommands
}

func NewRedisStore(client *database.RedisClient) *RedisStore {
	return &RedisStore{redis: client}
}

func (s *RedisStore) Create(ctx context.Context, form models.ApplicationForm) (*models.MemberRecord, error) {
	eKey := emailKeyPrefix + emailKey(form.Email)

	reserved, err := s.redis.SetNX(ctx, eKey, "pending", 0)
	if err != nil {
		return nil, fmt.Errorf("reserve email: %w", err)
	}
	if !reserved {
		return nil, ErrDuplicateEmail
	}

	n, err := s.redis.Incr(ctx, memberCounterKey)
	if err != nil {
		_ = s.redis.Del(ctx, eKey)
		return nil, fmt.Errorf("next member counter: %w", err)
	}

	record := newRecord(form, n)
	payload, err := json.Marshal(record)
	if err != nil {
		_ = s.redis.Del(ctx, eKey)
		return nil, fmt.Errorf("encode member: %w", err)
	}

	mKey := memberKeyPrefix + record.MemberID
	if err := s.redis.Set(ctx, mKey, payload, 0); err != nil {
		_ = s.redis.Del(ctx, eKey)
		return nil, fmt.Errorf("store member: %w", err)
	}
	// A failed index write undoes the whole application.
	if err := s.redis.Set(ctx, eKey, record.MemberID, 0); err != nil {
		_ = s.redis.Del(ctx, eKey, mKey)
		return nil, fmt.Errorf("index member email: %w", err)
	}

	return record, nil
}

func (s *RedisStore) Get(ctx context.Context, memberID string) (*models.MemberRecord, error) {
	raw, err := s.redis.Get(ctx, memberKeyPrefix+memberID)
	if database.IsNil(err) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load member: %w", err)
	}

	var record models.MemberRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("decode member: %w", err)
	}
	return &record, nil
}
