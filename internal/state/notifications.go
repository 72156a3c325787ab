package state

import (
	"context"
	"slices"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// NotificationsData is the notification inbox.
type NotificationsData struct {
	Items  []domain.Notification
	Unread int
}

// NotificationsSlice tracks in-app notifications.
type NotificationsSlice struct {
	base[NotificationsData]
}

// Load fetches the inbox.
func (n *NotificationsSlice) Load(ctx context.Context) error {
	return run(ctx, &n.base, "list", func(ctx context.Context) ([]domain.Notification, error) {
		return n.store.api.Notifications(ctx, false)
	}, func(d *NotificationsData, items []domain.Notification) {
		d.Items = items
		d.Unread = countUnread(items)
	})
}

// MarkRead marks one notification read on the server and locally.
func (n *NotificationsSlice) MarkRead(ctx context.Context, id string) error {
	return run(ctx, &n.base, "read", func(ctx context.Context) (string, error) {
		return id, n.store.api.MarkNotificationRead(ctx, id)
	}, func(d *NotificationsData, id string) {
		items := slices.Clone(d.Items)
		for i := range items {
			if items[i].ID == id {
				items[i].Read = true
			}
		}
		d.Items = items
		d.Unread = countUnread(items)
	})
}

// Delete removes one notification.
func (n *NotificationsSlice) Delete(ctx context.Context, id string) error {
	return run(ctx, &n.base, "delete", func(ctx context.Context) (string, error) {
		return id, n.store.api.DeleteNotification(ctx, id)
	}, func(d *NotificationsData, id string) {
		d.Items = slices.DeleteFunc(slices.Clone(d.Items), func(x domain.Notification) bool { return x.ID == id })
		d.Unread = countUnread(d.Items)
	})
}

func countUnread(items []domain.Notification) int {
	n := 0
	for _, it := range items {
		if !it.Read {
			n++
		}
	}
	return n
}
