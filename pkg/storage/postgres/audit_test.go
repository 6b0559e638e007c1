package postgres_test

import (
	"context"
	"linkaudit/pkg/domain"
	"linkaudit/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Audits(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()
	runID := domain.RunID(uuid.New())

	stored, err := pg.StoreAudits(ctx,
		pendingAudit(runID, "gallery/b.ipynb"),
		pendingAudit(runID, "gallery/a.ipynb"))
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, a := range stored {
		require.NotEqual(t, domain.AuditID{}, a.ID)
		require.Equal(t, runID, a.RunID)
		require.Equal(t, domain.AuditStatusPending, a.Status)
		require.Zero(t, a.Attempts)
		require.True(t, a.Result.Passed())
		require.False(t, a.CreatedAt.IsZero())
		require.True(t, a.UpdatedAt.IsZero())
	}

	t.Run("store nothing", func(t *testing.T) {
		res, err := pg.StoreAudits(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("run audits ordered by notebook", func(t *testing.T) {
		audits, err := pg.RunAudits(ctx, runID)
		require.NoError(t, err)
		require.Len(t, audits, 2)
		require.Equal(t, "gallery/a.ipynb", audits[0].Notebook)
		require.Equal(t, "gallery/b.ipynb", audits[1].Notebook)
	})

	t.Run("unknown run", func(t *testing.T) {
		audits, err := pg.RunAudits(ctx, domain.RunID(uuid.New()))
		require.NoError(t, err)
		require.Empty(t, audits)
	})

	t.Run("by id", func(t *testing.T) {
		got, err := pg.AuditByID(ctx, stored[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, stored[0].Notebook, got.Notebook)

		missing, err := pg.AuditByID(ctx, domain.AuditID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("update with result", func(t *testing.T) {
		result := domain.AuditResult{
			Notebook: stored[1].Notebook,
			Checked:  3,
			Dead:     []domain.DeadLink{{URL: "http://dead.example/b", Reason: domain.ReasonDead}},
		}
		updated, err := pg.UpdateAuditByID(ctx, stored[1].ID, storage.AuditUpdates{
			Status: domain.AuditStatusFailed,
			Result: &result,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, domain.AuditStatusFailed, updated.Status)
		require.Equal(t, result, updated.Result)
		require.Equal(t, uint(1), updated.Attempts)
		require.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("update sets and clears last error", func(t *testing.T) {
		msg := "read notebook: permission denied"
		updated, err := pg.UpdateAuditByID(ctx, stored[0].ID, storage.AuditUpdates{
			Status:    domain.AuditStatusError,
			LastError: &msg,
		})
		require.NoError(t, err)
		require.Equal(t, msg, updated.LastError)

		empty := ""
		updated, err = pg.UpdateAuditByID(ctx, stored[0].ID, storage.AuditUpdates{
			Status:    domain.AuditStatusPassed,
			LastError: &empty,
		})
		require.NoError(t, err)
		require.Empty(t, updated.LastError)
		require.Equal(t, uint(2), updated.Attempts)
	})

	t.Run("update missing", func(t *testing.T) {
		updated, err := pg.UpdateAuditByID(ctx, domain.AuditID(uuid.New()), storage.AuditUpdates{
			Status: domain.AuditStatusPassed,
		})
		require.NoError(t, err)
		require.Nil(t, updated)
	})
}
