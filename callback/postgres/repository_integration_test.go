//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/marcelsud/callback-inbox/callback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_Lifecycle_Integration(t *testing.T) {
	ctx := context.Background()

	pgContainer, cleanup := SetupPostgresContainer(t, ctx)
	defer cleanup()

	repo := CreateTestRepository(t, ctx, pgContainer.ConnStr)
	defer repo.Close(ctx)

	app, err := repo.CreateApplication(ctx, callback.Application{Name: "payments", RootPath: "abc123"})
	require.NoError(t, err)
	assert.NotZero(t, app.ID)
	assert.False(t, app.CreatedAt.IsZero())

	push, err := repo.CreateReceiver(ctx, callback.Receiver{AppID: app.ID, Name: "push", Path: "github/push"})
	require.NoError(t, err)
	_, err = repo.CreateReceiver(ctx, callback.Receiver{AppID: app.ID, Name: "github", Path: "github"})
	require.NoError(t, err)

	t.Run("resolve is an exact match", func(t *testing.T) {
		r, err := repo.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)
		assert.Equal(t, push.ID, r.ID)
		assert.Equal(t, "abc123", r.RootPath)

		_, err = repo.ResolveReceiver(ctx, "abc123", "github/push/extra")
		assert.ErrorIs(t, err, callback.ErrReceiverNotFound)

		_, err = repo.ResolveReceiver(ctx, "other", "github/push")
		assert.ErrorIs(t, err, callback.ErrReceiverNotFound)
	})

	t.Run("duplicate path in the same application", func(t *testing.T) {
		_, err := repo.CreateReceiver(ctx, callback.Receiver{AppID: app.ID, Name: "dup", Path: "github"})
		assert.ErrorIs(t, err, callback.ErrInvalidConfig)
	})

	t.Run("response override round trip", func(t *testing.T) {
		push.Response = callback.ResponseConfig{
			Status:  202,
			Headers: map[string]string{"X-Custom": "1"},
			Body:    json.RawMessage(`{"ok":true}`),
		}
		push.AutoForward = true
		require.NoError(t, repo.UpdateReceiver(ctx, push))

		r, err := repo.ResolveReceiver(ctx, "abc123", "github/push")
		require.NoError(t, err)
		assert.True(t, r.AutoForward)
		assert.Equal(t, 202, r.Response.Status)
		assert.Equal(t, "1", r.Response.Headers["X-Custom"])
		assert.JSONEq(t, `{"ok":true}`, string(r.Response.Body))
	})

	t.Run("corrupt stored override", func(t *testing.T) {
		_, err := pgContainer.DB.ExecContext(ctx, "UPDATE receivers SET response_body = '{broken' WHERE path = 'github'")
		require.NoError(t, err)

		_, err = repo.ResolveReceiver(ctx, "abc123", "github")
		assert.ErrorIs(t, err, callback.ErrConfigurationCorrupt)
	})

	t.Run("messages and forward logs", func(t *testing.T) {
		target, err := repo.CreateForwardTarget(ctx, callback.ForwardTarget{ReceiverID: push.ID, Name: "local", URL: "http://localhost:3000", Enabled: true})
		require.NoError(t, err)
		disabled, err := repo.CreateForwardTarget(ctx, callback.ForwardTarget{ReceiverID: push.ID, Name: "off", URL: "http://localhost:3001", Enabled: true})
		require.NoError(t, err)
		require.NoError(t, repo.SetForwardTargetEnabled(ctx, disabled.ID, false))

		enabled, err := repo.ListEnabledForwardTargets(ctx, push.ID)
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, target.ID, enabled[0].ID)

		m, err := repo.CreateMessage(ctx, callback.Message{
			ReceiverID: push.ID,
			Method:     "POST",
			Headers:    map[string]string{"content-type": "application/json"},
			Body:       `{"a": 1}`,
			Query:      map[string][]string{"tag": {"x", "y"}},
			IP:         "10.0.0.1",
		})
		require.NoError(t, err)
		assert.False(t, m.ReceivedAt.IsZero())

		stored, err := repo.GetMessage(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, `{"a": 1}`, stored.Body)
		assert.Equal(t, []string{"x", "y"}, stored.Query["tag"])

		detail := "network error: connection refused"
		_, err = repo.CreateForwardLog(ctx, callback.ForwardLog{MessageID: m.ID, TargetID: target.ID, Status: callback.ForwardError, Error: &detail})
		require.NoError(t, err)

		logs, err := repo.ListForwardLogs(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, callback.ForwardError, logs[0].Status)
		assert.Nil(t, logs[0].ResponseCode)
		assert.Equal(t, detail, *logs[0].Error)

		counts, err := repo.CountForwardLogsByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts["error"])
	})

	t.Run("binary body and NUL query survive storage", func(t *testing.T) {
		binary := string([]byte{0xff, 0x00, 0xfe, 'a', 0xe9})

		m, err := repo.CreateMessage(ctx, callback.Message{
			ReceiverID: push.ID,
			Method:     "POST",
			Headers:    map[string]string{"content-type": "application/octet-stream"},
			Body:       binary,
			Query:      map[string][]string{"a": {"\x00"}},
		})
		require.NoError(t, err)

		stored, err := repo.GetMessage(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, []byte(binary), []byte(stored.Body))
		assert.Equal(t, []string{"\x00"}, stored.Query["a"])
	})

	t.Run("listing, renaming and clearing", func(t *testing.T) {
		renamed, err := repo.UpdateApplication(ctx, callback.Application{ID: app.ID, Name: "billing"})
		require.NoError(t, err)
		assert.Equal(t, "abc123", renamed.RootPath)

		apps, err := repo.ListApplications(ctx)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, "billing", apps[0].Name)

		receivers, err := repo.ListReceivers(ctx, app.ID)
		require.Error(t, err, "the corrupt override stored above fails the listing")
		assert.Nil(t, receivers)
		_, err = pgContainer.DB.ExecContext(ctx, "UPDATE receivers SET response_body = NULL WHERE path = 'github'")
		require.NoError(t, err)
		receivers, err = repo.ListReceivers(ctx, app.ID)
		require.NoError(t, err)
		assert.Len(t, receivers, 2)

		page, err := repo.ListMessages(ctx, push.ID, callback.Page{Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		newest := page[0].ID

		all, err := repo.ListApplicationMessages(ctx, app.ID, callback.Page{Limit: 100})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, newest, all[0].ID)

		require.NoError(t, repo.DeleteMessage(ctx, newest))
		assert.ErrorIs(t, repo.DeleteMessage(ctx, newest), callback.ErrNotFound)

		n, err := repo.DeleteMessages(ctx, push.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		AssertRowCount(t, ctx, pgContainer.DB, "forward_logs", 0)
	})

	t.Run("target update and delete", func(t *testing.T) {
		target, err := repo.CreateForwardTarget(ctx, callback.ForwardTarget{ReceiverID: push.ID, Name: "tmp", URL: "http://localhost:4000", Enabled: true})
		require.NoError(t, err)

		target.Name = "staging"
		target.Enabled = false
		require.NoError(t, repo.UpdateForwardTarget(ctx, target))

		stored, err := repo.GetForwardTarget(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, "staging", stored.Name)
		assert.False(t, stored.Enabled)

		logs, err := repo.ListTargetForwardLogs(ctx, target.ID, callback.Page{Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, logs)

		require.NoError(t, repo.DeleteForwardTarget(ctx, target.ID))
		_, err = repo.GetForwardTarget(ctx, target.ID)
		assert.ErrorIs(t, err, callback.ErrNotFound)
	})

	t.Run("deleting the application cascades", func(t *testing.T) {
		require.NoError(t, repo.DeleteApplication(ctx, app.ID))

		AssertRowCount(t, ctx, pgContainer.DB, "receivers", 0)
		AssertRowCount(t, ctx, pgContainer.DB, "messages", 0)
		AssertRowCount(t, ctx, pgContainer.DB, "forward_logs", 0)

		assert.ErrorIs(t, repo.DeleteApplication(ctx, app.ID), callback.ErrNotFound)
	})
}
