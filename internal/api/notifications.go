package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// Notifications lists notifications, newest first.
func (c *Client) Notifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	v := url.Values{}
	if unreadOnly {
		v.Set("unread", "true")
	}
	var out []domain.Notification
	if err := c.getJSON(ctx, "/notifications", v, &out); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	if err := c.sendJSON(ctx, http.MethodPatch, "/notifications/"+escape(id)+"/read", nil, nil); err != nil {
		return fmt.Errorf("mark notification %q read: %w", id, err)
	}
	return nil
}

// DeleteNotification removes one notification.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	if err := c.sendJSON(ctx, http.MethodDelete, "/notifications/"+escape(id), nil, nil); err != nil {
		return fmt.Errorf("delete notification %q: %w", id, err)
	}
	return nil
}
