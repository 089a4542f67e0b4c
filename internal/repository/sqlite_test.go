package repository

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoctFaust/campus-info-system/internal/models"
	"github.com/DoctFaust/campus-info-system/internal/service"
	"github.com/DoctFaust/campus-info-system/pkg/migrator"
	"github.com/DoctFaust/campus-info-system/pkg/sqlite"
)

// Миграция 000002 заполняет базу восемью демонстрационными инцидентами
const (
	seededTotal    = 8
	seededResolved = 3
)

func newTestSQLiteRepository(t *testing.T) *SQLiteIncidentRepository {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.NewSQLiteDB(ctx, filepath.Join(t.TempDir(), "incidents.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	require.NoError(t, migrator.UpSQLite(db, "../../migrations/sqlite", logger))

	return NewSQLiteIncidentRepository(db).(*SQLiteIncidentRepository)
}

func TestSQLite_CreateAndGet(t *testing.T) {
	// Подготовка
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()
	incident := &models.Incident{
		Type:         models.TypeSecurity,
		Description:  "Открытая дверь серверной",
		Latitude:     40.75,
		Longitude:    -73.98,
		Severity:     models.SeverityCritical,
		Status:       models.StatusActive,
		ReporterName: "Охрана",
		ImagePath:    "/uploads/door.png",
	}

	// Действие
	require.NoError(t, repo.Create(ctx, incident))
	got, err := repo.GetByID(ctx, incident.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(seededTotal+1), incident.ID)
	assert.False(t, incident.Timestamp.IsZero())
	assert.Equal(t, incident, got)
}

func TestSQLite_GetByID_NotFound(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	_, err := repo.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSQLite_UpdateAndResolve(t *testing.T) {
	// Подготовка
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()
	inc, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	// Действие
	inc.Severity = models.SeverityHigh
	inc.Description = "Столкновение двух машин"
	require.NoError(t, repo.Update(ctx, inc))
	require.NoError(t, repo.Resolve(ctx, 1))

	// Проверки
	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.SeverityHigh, got.Severity)
	assert.Equal(t, "Столкновение двух машин", got.Description)
	assert.Equal(t, models.StatusResolved, got.Status)

	assert.ErrorIs(t, repo.Resolve(ctx, 999), service.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &models.Incident{ID: 999}), service.ErrNotFound)
}

func TestSQLite_ListIncidents_Filters(t *testing.T) {
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()

	resolved, err := repo.ListIncidents(ctx, models.IncidentFilter{Status: models.StatusResolved})
	require.NoError(t, err)
	assert.Len(t, resolved, seededResolved)

	noise, err := repo.ListIncidents(ctx, models.IncidentFilter{Type: models.TypeNoise})
	require.NoError(t, err)
	require.Len(t, noise, 1)
	assert.Equal(t, "Loud construction work near dormitory", noise[0].Description)

	page, err := repo.ListIncidents(ctx, models.IncidentFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	// новые первыми: шум (30 минут назад), затем концерт (час назад)
	assert.Equal(t, models.TypeNoise, page[0].Type)
	assert.Equal(t, models.TypeCampusActivity, page[1].Type)

	next, err := repo.ListIncidents(ctx, models.IncidentFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, models.TypeTrafficAccident, next[0].Type)
}

func TestSQLite_Snapshot_OrderedByID(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	snap, err := repo.Snapshot(context.Background(), models.IncidentFilter{})

	require.NoError(t, err)
	require.Len(t, snap, seededTotal)
	for i, inc := range snap {
		assert.Equal(t, int64(i+1), inc.ID)
	}
}

func TestSQLite_Snapshot_LimitKeepsNewest(t *testing.T) {
	// Подготовка
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()
	fresh := &models.Incident{
		Type:      models.TypeNoise,
		Latitude:  40.7589,
		Longitude: -73.9851,
		Severity:  models.SeverityLow,
		Status:    models.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, fresh))

	// Действие
	snap, err := repo.Snapshot(ctx, models.IncidentFilter{Limit: seededTotal})

	// Проверки
	require.NoError(t, err)
	require.Len(t, snap, seededTotal)
	assert.Equal(t, int64(2), snap[0].ID)
	assert.Equal(t, fresh.ID, snap[len(snap)-1].ID)
	for i := 1; i < len(snap); i++ {
		assert.Less(t, snap[i-1].ID, snap[i].ID)
	}
}

func TestSQLite_Snapshot_LimitWithFilter(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	all, err := repo.Snapshot(context.Background(), models.IncidentFilter{Status: models.StatusActive})
	require.NoError(t, err)
	require.Greater(t, len(all), 2)

	snap, err := repo.Snapshot(context.Background(), models.IncidentFilter{Status: models.StatusActive, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, all[len(all)-2:], snap)
}

func TestSQLite_FindActiveNear(t *testing.T) {
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()

	near, err := repo.FindActiveNear(ctx, 40.7589, -73.9851, 100)
	require.NoError(t, err)
	ids := make([]int64, 0, len(near))
	for _, inc := range near {
		ids = append(ids, inc.ID)
	}
	// #1 в самой точке, #6 примерно в 84 м; resolved #2 отбрасывается
	assert.Equal(t, []int64{1, 6}, ids)

	wide, err := repo.FindActiveNear(ctx, 40.7589, -73.9851, 250)
	require.NoError(t, err)
	assert.Len(t, wide, seededTotal-seededResolved)
}

func TestSQLite_LocationCheckStats(t *testing.T) {
	// Подготовка
	repo := newTestSQLiteRepository(t)
	ctx := context.Background()
	for _, user := range []string{"u1", "u2", "u1"} {
		check := &models.LocationCheck{UserID: user, Latitude: 40.7589, Longitude: -73.9851, IsDangerous: true}
		require.NoError(t, repo.SaveLocationCheck(ctx, check))
		assert.NotZero(t, check.ID)
	}

	// Действие
	count, err := repo.GetLocationCheckStats(ctx, 60)
	require.NoError(t, err)

	later := time.Now().Add(2 * time.Hour)
	repo.now = func() time.Time { return later }
	stale, err := repo.GetLocationCheckStats(ctx, 60)
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, stale)
}
