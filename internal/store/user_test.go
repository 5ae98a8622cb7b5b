package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicetrails/go-shop-api/internal/model"
)

func TestCreateUser_AssignsFlooredIDs(t *testing.T) {
	s := newTestStore(t)

	first := addUser(t, s, "a@example.com")
	second := addUser(t, s, "b@example.com")

	assert.Equal(t, 10_000_001, first.ID)
	assert.Equal(t, 10_000_002, second.ID)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, "alice@example.com")

	_, err := s.CreateUser("other", "ALICE@Example.Com", "pw")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateUser_ConcurrentUniqueIDs(t *testing.T) {
	s := newTestStore(t)

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := s.CreateUser("u", fmt.Sprintf("user%d@example.com", i), "pw")
			require.NoError(t, err)
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.Greater(t, id, 10_000_000)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)
	user := addUser(t, s, "a@example.com")

	user.Username = "renamed"
	user.IsAdmin = true
	require.NoError(t, s.UpdateUser(user))

	got, err := s.UserByEmail("A@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Username)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, user.ID, got.ID)

	assert.ErrorIs(t, s.UpdateUser(model.User{Email: "nobody@example.com"}), ErrUserNotFound)
}

func TestUpdateCart(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, "alice@example.com")

	require.NoError(t, s.UpdateCart("alice@example.com", map[string]int{"20000001": 3}))

	u, err := s.UserByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"20000001": 3}, u.Cart)

	assert.ErrorIs(t, s.UpdateCart("ghost@example.com", nil), ErrUserNotFound)
}

func TestSubscribeNewsletter(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, "alice@example.com")

	subscribed, err := s.SubscribeNewsletter("alice@example.com")
	require.NoError(t, err)
	assert.True(t, subscribed)

	again, err := s.SubscribeNewsletter("alice@example.com")
	require.NoError(t, err)
	assert.False(t, again)

	_, err = s.SubscribeNewsletter("ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserCompletely_Cascades(t *testing.T) {
	s := newTestStore(t)
	addUser(t, s, "alice@example.com")
	addUser(t, s, "bob@example.com")
	pid := addProduct(t, s, "D6 Cube", 5, 100)

	aliceOrder, err := s.PlaceOrder(model.Order{
		UserID: "alice@example.com",
		Items:  []model.OrderItem{{ProductID: pid, Quantity: 1}},
	})
	require.NoError(t, err)
	bobOrder, err := s.PlaceOrder(model.Order{
		UserID: "bob@example.com",
		Items:  []model.OrderItem{{ProductID: pid, Quantity: 1}},
	})
	require.NoError(t, err)

	s.AddReview(model.Review{ProductID: "p", User: "alice", Rating: 5, OrderID: aliceOrder})
	s.AddReview(model.Review{ProductID: "p", User: "bob", Rating: 4, OrderID: bobOrder})

	require.NoError(t, s.DeleteUserCompletely("alice@example.com"))

	_, err = s.UserByEmail("alice@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, s.OrdersByUser("alice@example.com"))
	assert.Len(t, s.OrdersByUser("bob@example.com"), 1)

	reviews := s.ReviewsByProduct("p")
	require.Len(t, reviews, 1)
	assert.Equal(t, "bob", reviews[0].User)

	assert.ErrorIs(t, s.DeleteUserCompletely("alice@example.com"), ErrUserNotFound)
}
