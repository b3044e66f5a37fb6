package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Haarizz/inventory-registries/internal/core/apperror"
	"github.com/Haarizz/inventory-registries/internal/core/id"
)

type mockNotificationRepo struct {
	byID map[id.ID]*Notification

	batches  [][]*Notification
	read     []id.ID
	inactive []id.ID

	batchErr error
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{byID: make(map[id.ID]*Notification)}
}

func (m *mockNotificationRepo) CreateBatch(ctx context.Context, items []*Notification) error {
	if m.batchErr != nil {
		return m.batchErr
	}
	m.batches = append(m.batches, items)
	for _, n := range items {
		m.byID[n.ID] = n
	}
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, notificationID id.ID) (*Notification, error) {
	n, ok := m.byID[notificationID]
	if !ok {
		return nil, apperror.NewNotFound("notification", notificationID.String())
	}
	return n, nil
}

func (m *mockNotificationRepo) List(ctx context.Context, filter ListFilter) ([]*Notification, error) {
	var out []*Notification
	for _, n := range m.byID {
		if n.Recipient != filter.Recipient {
			continue
		}
		if filter.UnreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, recipient string) (int64, error) {
	var count int64
	for _, n := range m.byID {
		if n.Recipient == recipient && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, notificationID id.ID) error {
	m.read = append(m.read, notificationID)
	if n, ok := m.byID[notificationID]; ok {
		n.Read = true
	}
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, recipient string) error {
	for _, n := range m.byID {
		if n.Recipient == recipient {
			n.Read = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) SetActive(ctx context.Context, notificationID id.ID, active bool) error {
	if !active {
		m.inactive = append(m.inactive, notificationID)
	}
	return nil
}

func TestServiceMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := newMockNotificationRepo()
	svc := NewService(repo)

	n := New("alice", "Hello", "message", CategoryInfo)
	repo.byID[n.ID] = n

	t.Run("recipient marks read", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(ctx, n.ID, "alice"))
		assert.True(t, n.Read)
	})

	t.Run("marking twice is a no-op", func(t *testing.T) {
		before := len(repo.read)
		require.NoError(t, svc.MarkRead(ctx, n.ID, "alice"))
		assert.Equal(t, before, len(repo.read))
	})

	t.Run("other user is rejected", func(t *testing.T) {
		err := svc.MarkRead(ctx, n.ID, "mallory")
		assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))
	})

	t.Run("unknown notification", func(t *testing.T) {
		err := svc.MarkRead(ctx, id.New(), "alice")
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMockNotificationRepo()
	svc := NewService(repo)

	n := New("alice", "Hello", "message", CategoryInfo)
	repo.byID[n.ID] = n

	err := svc.Delete(ctx, n.ID, "mallory")
	assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))
	assert.Empty(t, repo.inactive)

	require.NoError(t, svc.Delete(ctx, n.ID, "alice"))
	assert.Equal(t, []id.ID{n.ID}, repo.inactive)
}

func TestServiceListFor(t *testing.T) {
	ctx := context.Background()
	repo := newMockNotificationRepo()
	svc := NewService(repo)

	a := New("alice", "One", "m", CategoryInfo)
	b := New("alice", "Two", "m", CategoryInfo)
	b.Read = true
	c := New("bob", "Three", "m", CategoryInfo)
	for _, n := range []*Notification{a, b, c} {
		repo.byID[n.ID] = n
	}

	all, err := svc.ListFor(ctx, "alice", false, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	unread, err := svc.ListFor(ctx, "alice", true, 10, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "One", unread[0].Title)

	count, err := svc.CountUnreadFor(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("stores valid notices", func(t *testing.T) {
		repo := newMockNotificationRepo()
		d := NewDispatcher(repo)

		d.Dispatch(ctx, []*Notification{
			New("alice", "Hello", "m", CategoryInfo),
			New("bob", "Hi", "m", CategoryApproval),
		})

		require.Len(t, repo.batches, 1)
		assert.Len(t, repo.batches[0], 2)
	})

	t.Run("skips invalid entries", func(t *testing.T) {
		repo := newMockNotificationRepo()
		d := NewDispatcher(repo)

		d.Dispatch(ctx, []*Notification{
			New("", "Hello", "m", CategoryInfo),
			New("bob", "Hi", "m", CategoryInfo),
		})

		require.Len(t, repo.batches, 1)
		require.Len(t, repo.batches[0], 1)
		assert.Equal(t, "bob", repo.batches[0][0].Recipient)
	})

	t.Run("empty batch is not stored", func(t *testing.T) {
		repo := newMockNotificationRepo()
		d := NewDispatcher(repo)

		d.Dispatch(ctx, nil)
		d.Dispatch(ctx, []*Notification{New("", "", "m", CategoryInfo)})
		assert.Empty(t, repo.batches)
	})

	t.Run("storage failure is swallowed", func(t *testing.T) {
		repo := newMockNotificationRepo()
		repo.batchErr = errors.New("connection lost")
		d := NewDispatcher(repo)

		// must not panic or propagate
		d.Dispatch(ctx, []*Notification{New("alice", "Hello", "m", CategoryInfo)})
		assert.Empty(t, repo.batches)
	})
}
