package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"

	"github.com/dmitrijs2005/sitrack/internal/client/client"
	"github.com/dmitrijs2005/sitrack/internal/client/models"
	"github.com/dmitrijs2005/sitrack/internal/client/store"
)

const notificationsBase = "/api/notifications"

// Notifications is the current user's inbox.
type Notifications struct {
	*store.Collection[models.Notification]
	deps store.Deps
}

func NewNotifications(deps store.Deps) *Notifications {
	return &Notifications{
		Collection: store.New(deps, store.Entity[models.Notification]{
			Name:      "Notifikasi",
			Endpoints: store.Endpoints{Base: notificationsBase},
			ID:        models.Notification.Key,
		}),
		deps: deps,
	}
}

// Fetch loads the inbox from GET /api/notifications.
func (n *Notifications) Fetch(ctx context.Context) store.Result[[]models.Notification] {
	return n.FetchFrom(ctx, "", nil)
}

// ByCategory returns the notifications of one category without touching
// the inbox.
func (n *Notifications) ByCategory(ctx context.Context, category string) store.Result[[]models.Notification] {
	res := store.Call[[]models.Notification](ctx, n.deps, "mengambil notifikasi", client.Request{
		Method: http.MethodGet,
		Path:   notificationsBase + "/category/" + url.PathEscape(category),
	})
	if res.OK && res.Value == nil {
		res.Value = []models.Notification{}
	}
	return res
}

// MarkRead flags one notification as read on the backend and locally.
func (n *Notifications) MarkRead(ctx context.Context, id string) store.Result[models.Notification] {
	return n.Transition(ctx, store.Transition[models.Notification]{
		Action:  "menandai notifikasi",
		Success: "Notifikasi ditandai telah dibaca",
		Path:    "/" + url.PathEscape(id) + "/read",
		ID:      id,
		Apply:   func(x *models.Notification) { x.IsRead = true },
	})
}

// BulkDelete removes the given notifications on the backend and then from
// the inbox.
func (n *Notifications) BulkDelete(ctx context.Context, ids []int64) store.Result[int] {
	res := store.Call[json.RawMessage](ctx, n.deps, "menghapus notifikasi", client.Request{
		Method: http.MethodPost,
		Path:   notificationsBase + "/bulk-delete",
		Body:   ids,
	})
	if !res.OK {
		return store.Result[int]{Err: res.Err, Message: res.Message}
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = models.Notification{ID: id}.Key()
	}
	removed := n.Remove(keys...)
	return store.Result[int]{OK: true, Value: removed}
}

// TriggerCheck asks the backend to scan fleet documents for expiry now.
func (n *Notifications) TriggerCheck(ctx context.Context) store.Result[json.RawMessage] {
	return store.Call[json.RawMessage](ctx, n.deps, "memicu pengecekan dokumen", client.Request{
		Method: http.MethodPost,
		Path:   notificationsBase + "/trigger-check",
	})
}

// UnreadCount counts unread notifications in the inbox.
func (n *Notifications) UnreadCount() int {
	count := 0
	for _, x := range n.Items() {
		if !x.IsRead {
			count++
		}
	}
	return count
}

// References returns the inbox entries about expiring fleet documents.
func (n *Notifications) References() []models.Notification {
	return slices.DeleteFunc(n.Items(), func(x models.Notification) bool {
		return !slices.Contains(models.ReferenceCategories, x.Category)
	})
}
