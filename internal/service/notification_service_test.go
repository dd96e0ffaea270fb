package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverpro-service/internal/model"
	"driverpro-service/internal/store"
)

func TestMarkRead_RecipientOnly(t *testing.T) {
	st := store.New()
	svc := NewNotificationService(st)

	note := st.InsertNotification(model.AppNotification{
		UserID:  "u1",
		Title:   "Request Accepted",
		Message: "ok",
		Type:    model.NotificationTypeInfo,
	})

	_, err := svc.MarkRead(context.Background(), model.Principal{UserID: "intruder"}, note.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	updated, err := svc.MarkRead(context.Background(), model.Principal{UserID: "u1"}, note.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)

	_, err = svc.MarkRead(context.Background(), model.Principal{UserID: "u1"}, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMine_OnlyOwnNotifications(t *testing.T) {
	st := store.New()
	svc := NewNotificationService(st)

	st.InsertNotification(model.AppNotification{UserID: "u1", Title: "a", Type: model.NotificationTypeInfo})
	st.InsertNotification(model.AppNotification{UserID: "u2", Title: "b", Type: model.NotificationTypeInfo})

	mine := svc.ListMine(context.Background(), model.Principal{UserID: "u1"})
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].Title)
}
