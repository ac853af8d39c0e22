package session_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlist/castkit/pkg/session"
)

func testUser() session.User {
	return session.User{
		ID:        "u1",
		Email:     "ada@example.com",
		Name:      "Ada",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_State(t *testing.T) {
	t.Parallel()

	t.Run("empty store is signed out", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		st := store.State()
		assert.False(t, st.IsAuthenticated)
		assert.Nil(t, st.User)
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		store.SetUser(testUser())

		st := store.State()
		require.NotNil(t, st.User)
		st.User.Name = "mutated"

		assert.Equal(t, "Ada", store.State().User.Name)
	})
}

func TestStore_SetClearUpdate(t *testing.T) {
	t.Parallel()

	t.Run("set then clear", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		store.SetUser(testUser())
		require.True(t, store.State().IsAuthenticated)

		store.ClearUser()
		st := store.State()
		assert.False(t, st.IsAuthenticated)
		assert.Nil(t, st.User)
	})

	t.Run("update merges patch", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		store.SetUser(testUser())

		isMember := true
		plan := session.MembershipYearly
		store.UpdateUser(session.Patch{IsMember: &isMember, MembershipType: &plan})

		st := store.State()
		require.NotNil(t, st.User)
		assert.True(t, st.User.IsMember)
		assert.Equal(t, session.MembershipYearly, st.User.MembershipType)
		assert.Equal(t, "Ada", st.User.Name, "untouched fields survive the patch")
	})

	t.Run("update without user is a no-op", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		isMember := true
		store.UpdateUser(session.Patch{IsMember: &isMember})

		st := store.State()
		assert.False(t, st.IsAuthenticated)
		assert.Nil(t, st.User)
	})
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("exactly once per change, registration order", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		var order []string
		store.Subscribe(func(session.State) { order = append(order, "a") })
		store.Subscribe(func(session.State) { order = append(order, "b") })

		store.SetUser(testUser())
		assert.Equal(t, []string{"a", "b"}, order)
	})

	t.Run("listener sees consistent snapshot", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		var seen []session.State
		store.Subscribe(func(st session.State) { seen = append(seen, st) })

		store.SetUser(testUser())
		store.ClearUser()

		require.Len(t, seen, 2)
		assert.True(t, seen[0].IsAuthenticated)
		require.NotNil(t, seen[0].User)
		assert.Equal(t, "u1", seen[0].User.ID)
		assert.False(t, seen[1].IsAuthenticated)
		assert.Nil(t, seen[1].User)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		calls := 0
		unsubscribe := store.Subscribe(func(session.State) { calls++ })

		store.SetUser(testUser())
		unsubscribe()
		unsubscribe() // second call is harmless
		store.ClearUser()

		assert.Equal(t, 1, calls)
	})

	t.Run("no-op update does not notify", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		calls := 0
		store.Subscribe(func(session.State) { calls++ })

		isMember := true
		store.UpdateUser(session.Patch{IsMember: &isMember})
		assert.Zero(t, calls)
	})
}

// The authenticated flag must never be observable without a user, no matter
// how mutators interleave.
func TestStore_ConsistencyInvariant(t *testing.T) {
	t.Parallel()

	store := session.NewStore()
	records := session.NewMemoryRecordStore()
	ctx := context.Background()

	store.Subscribe(func(st session.State) {
		if st.IsAuthenticated {
			assert.NotNil(t, st.User)
		} else {
			assert.Nil(t, st.User)
		}
	})

	rng := rand.New(rand.NewSource(1))
	var wg sync.WaitGroup
	for range 8 {
		seed := rng.Int63()
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := rand.New(rand.NewSource(seed))
			for range 200 {
				switch local.Intn(4) {
				case 0:
					store.SetUser(testUser())
				case 1:
					store.ClearUser()
				case 2:
					completed := local.Intn(2) == 0
					store.UpdateUser(session.Patch{ProfileCompleted: &completed})
				case 3:
					store.Hydrate(ctx, records)
				}
				st := store.State()
				if st.IsAuthenticated {
					assert.NotNil(t, st.User)
				} else {
					assert.Nil(t, st.User)
				}
			}
		}()
	}
	wg.Wait()
}

func TestStore_Hydrate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round-trips through the durable record", func(t *testing.T) {
		t.Parallel()

		records := session.NewMemoryRecordStore()
		rec, err := session.NewRecord("tok1", testUser())
		require.NoError(t, err)
		require.NoError(t, records.Save(ctx, rec))

		fresh := session.NewStore()
		fresh.Hydrate(ctx, records)

		st := fresh.State()
		require.True(t, st.IsAuthenticated)
		assert.Equal(t, testUser(), *st.User)
	})

	t.Run("empty storage hydrates signed out", func(t *testing.T) {
		t.Parallel()

		store := session.NewStore()
		store.SetUser(testUser())
		store.Hydrate(ctx, session.NewMemoryRecordStore())

		assert.False(t, store.State().IsAuthenticated)
	})

	t.Run("corrupt user payload degrades to signed out", func(t *testing.T) {
		t.Parallel()

		records := session.NewMemoryRecordStore()
		require.NoError(t, records.Save(ctx, session.Record{
			Token:         "tok1",
			User:          []byte("{not json"),
			Authenticated: true,
		}))

		store := session.NewStore()
		require.NotPanics(t, func() { store.Hydrate(ctx, records) })

		st := store.State()
		assert.False(t, st.IsAuthenticated)
		assert.Nil(t, st.User)
	})

	t.Run("incomplete record degrades to signed out", func(t *testing.T) {
		t.Parallel()

		records := session.NewMemoryRecordStore()
		require.NoError(t, records.Save(ctx, session.Record{Token: "tok1", Authenticated: true}))

		store := session.NewStore()
		store.Hydrate(ctx, records)
		assert.False(t, store.State().IsAuthenticated)
	})
}
