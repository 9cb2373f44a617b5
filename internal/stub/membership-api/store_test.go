// internal/stub/membership-api/store_test.go
package membershipapi

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"membership-portal/internal/common/database"
	"membership-portal/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidForm() models.ApplicationForm {
	return models.ApplicationForm{
		FullName:       "Jane Barrister",
		Email:          "jane@chambers.co.uk",
		Telephone:      "020 7946 0000",
		Postcode:       "EC4Y 9AY",
		MembershipType: models.MembershipTypeFull,
		LAAStatus:      true,
	}
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := database.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestFormatMemberID(t *testing.T) {
	assert.Equal(t, "MEMBER#000001", FormatMemberID(1))
	assert.Equal(t, "MEMBER#001234", FormatMemberID(1234))
	assert.Equal(t, "MEMBER#1234567", FormatMemberID(1234567))
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"redis": func(t *testing.T) Store {
			s, _ := newRedisStore(t)
			return s
		},
	}

	for name, build := range stores {
		t.Run(name+"/sequential ids", func(t *testing.T) {
			store := build(t)
			ctx := context.Background()

			first, err := store.Create(ctx, createValidForm())
			require.NoError(t, err)
			second := createValidForm()
			second.Email = "john@chambers.co.uk"
			next, err := store.Create(ctx, second)
			require.NoError(t, err)

			assert.Equal(t, "MEMBER#000001", first.MemberID)
			assert.Equal(t, "MEMBER#000002", next.MemberID)
			assert.Equal(t, models.MembershipStatusPending, first.MembershipStatus)
			assert.Equal(t, "MEMBER", first.RecordType)
			_, err = uuid.Parse(first.ApplicationID)
			assert.NoError(t, err)
			assert.NotEqual(t, first.ApplicationID, next.ApplicationID)
		})

		t.Run(name+"/duplicate email ignores case", func(t *testing.T) {
			store := build(t)
			ctx := context.Background()

			_, err := store.Create(ctx, createValidForm())
			require.NoError(t, err)

			dup := createValidForm()
			dup.Email = " JANE@Chambers.co.uk"
			_, err = store.Create(ctx, dup)
			assert.ErrorIs(t, err, ErrDuplicateEmail)
		})

		t.Run(name+"/get round trip", func(t *testing.T) {
			store := build(t)
			ctx := context.Background()

			created, err := store.Create(ctx, createValidForm())
			require.NoError(t, err)

			loaded, err := store.Get(ctx, created.MemberID)
			require.NoError(t, err)
			assert.Equal(t, created, loaded)

			_, err = store.Get(ctx, "MEMBER#999999")
			assert.ErrorIs(t, err, ErrMemberNotFound)
		})
	}
}

func TestRedisStore_Keys(t *testing.T) {
	store, mr := newRedisStore(t)

	record, err := store.Create(context.Background(), createValidForm())
	require.NoError(t, err)

	counter, err := mr.Get(memberCounterKey)
	require.NoError(t, err)
	assert.Equal(t, "1", counter)

	indexed, err := mr.Get(emailKeyPrefix + "jane@chambers.co.uk")
	require.NoError(t, err)
	assert.Equal(t, record.MemberID, indexed)
	assert.True(t, mr.Exists(memberKeyPrefix+record.MemberID))
}

func TestRedisStore_Unavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Create(context.Background(), createValidForm())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
}

// failingIndexRedis fails the Set that records the email index, after the
// reservation and the member record have been written.
type failingIndexRedis struct {
	*database.RedisClient
}

func (f failingIndexRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if strings.HasPrefix(key, emailKeyPrefix) {
		return errors.New("READONLY replica")
	}
	return f.RedisClient.Set(ctx, key, value, expiration)
}

func TestRedisStore_IndexFailureRollsBack(t *testing.T) {
	healthy, mr := newRedisStore(t)
	broken := &RedisStore{redis: failingIndexRedis{RedisClient: healthy.redis.(*database.RedisClient)}}
	ctx := context.Background()

	_, err := broken.Create(ctx, createValidForm())
	require.Error(t, err)

	assert.False(t, mr.Exists(emailKeyPrefix+"jane@chambers.co.uk"))
	assert.False(t, mr.Exists(memberKeyPrefix+FormatMemberID(1)))

	record, err := healthy.Create(ctx, createValidForm())
	require.NoError(t, err)
	assert.Equal(t, FormatMemberID(2), record.MemberID)
}
