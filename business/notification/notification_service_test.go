package notification

import (
	"context"
	"errors"
	"testing"

	"kantinkampus/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNotifRepo struct {
	nextID        uint
	notifications map[uint]domain.Notification
	failCreate    bool
}

func newMemNotifRepo() *memNotifRepo {
	return &memNotifRepo{notifications: make(map[uint]domain.Notification)}
}

func (r *memNotifRepo) Create(_ context.Context, notification *domain.Notification) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	r.nextID++
	notification.ID = r.nextID
	r.notifications[notification.ID] = *notification
	return nil
}

func (r *memNotifRepo) FindUnread(_ context.Context, userID uint) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNotifRepo) MarkRead(_ context.Context, id, userID uint) error {
	n, ok := r.notifications[id]
	if !ok || n.UserID != userID {
		return domain.ErrNotFound
	}
	n.IsRead = true
	r.notifications[id] = n
	return nil
}

func (r *memNotifRepo) CountUnread(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

type stubUserRepo struct{}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	return domain.User{ID: id, FullName: "Budi Santoso", Email: "budi@kampus.ac.id"}, nil
}

type recordingMailer struct {
	sent    int
	lastTo  string
	failing bool
}

func (m *recordingMailer) SendEmail(_, toEmail, _, _ string) error {
	if m.failing {
		return errors.New("smtp down")
	}
	m.sent++
	m.lastTo = toEmail
	return nil
}

func TestNotify_StoresRowAndMails(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotifRepo()
	mailer := &recordingMailer{}
	svc := NewNotificationService(repo, &stubUserRepo{}, mailer)

	svc.Notify(ctx, 7, domain.NotifOrderReady, "Order ready", "Your order is ready for pickup", 42)

	require.Len(t, repo.notifications, 1)
	stored := repo.notifications[1]
	assert.Equal(t, domain.NotifOrderReady, stored.Type)
	require.NotNil(t, stored.OrderID)
	assert.Equal(t, uint(42), *stored.OrderID)
	assert.False(t, stored.IsRead)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "budi@kampus.ac.id", mailer.lastTo)
}

func TestNotify_NilMailerSkipsEmail(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotifRepo()
	svc := NewNotificationService(repo, &stubUserRepo{}, nil)

	svc.Notify(ctx, 7, domain.NotifOrderCooking, "Order is being cooked", "Your order is being prepared", 0)

	require.Len(t, repo.notifications, 1)
	assert.Nil(t, repo.notifications[1].OrderID)
}

func TestNotify_EmailFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotifRepo()
	svc := NewNotificationService(repo, &stubUserRepo{}, &recordingMailer{failing: true})

	svc.Notify(ctx, 7, domain.NotifOrderCompleted, "Order completed", "Thank you for ordering!", 1)

	assert.Len(t, repo.notifications, 1, "the row still lands when email fails")
}

func TestUnreadFlow(t *testing.T) {
	ctx := context.Background()
	repo := newMemNotifRepo()
	svc := NewNotificationService(repo, &stubUserRepo{}, nil)

	svc.Notify(ctx, 7, domain.NotifOrderReady, "Order ready", "", 1)
	svc.Notify(ctx, 7, domain.NotifOrderCompleted, "Order completed", "", 1)
	svc.Notify(ctx, 8, domain.NotifOrderReady, "Order ready", "", 2)

	count, err := svc.UnreadCount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	unread, err := svc.GetUnread(ctx, 7)
	require.NoError(t, err)
	require.Len(t, unread, 2)

	require.NoError(t, svc.MarkRead(ctx, unread[0].ID, 7))
	count, err = svc.UnreadCount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// cannot mark someone else's notification
	err = svc.MarkRead(ctx, 3, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
