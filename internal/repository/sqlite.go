package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
	"github.com/DoctFaust/campus-info-system/internal/models"
	"github.com/DoctFaust/campus-info-system/internal/service"
)

// sqliteTimeLayout - фиксированная ширина, чтобы строки сравнивались как время
const sqliteTimeLayout = "2006-01-02T15:04:05.000Z"

const bboxPadding = 1.05

const sqliteIncidentColumns = `
	id,
	type,
	description,
	latitude,
	longitude,
	severity,
	status,
	reported_at,
	reporter_name,
	image_path`

// SQLiteIncidentRepository - хранилище инцидентов в одном файле SQLite без PostGIS.
// Поиск по радиусу отбирает кандидатов по ограничивающему прямоугольнику и
// уточняет расстояние на сфере.
type SQLiteIncidentRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteIncidentRepository(db *sql.DB) service.IncidentRepository {
	return &SQLiteIncidentRepository{db: db, now: time.Now}
}

func (r *SQLiteIncidentRepository) timestamp() string {
	return r.now().UTC().Format(sqliteTimeLayout)
}

// Create создает новую запись об инциденте в бд
func (r *SQLiteIncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	now := r.timestamp()
	query := `
		INSERT INTO incidents (type, description, latitude, longitude, severity, status, reporter_name, image_path, reported_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, query,
		string(incident.Type),
		incident.Description,
		incident.Latitude,
		incident.Longitude,
		string(incident.Severity),
		string(incident.Status),
		incident.ReporterName,
		incident.ImagePath,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read incident id: %w", err)
	}
	incident.ID = id
	incident.Timestamp, _ = time.Parse(sqliteTimeLayout, now)
	return nil
}

// GetByID возвращает инцидент по его ID
func (r *SQLiteIncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	query := `SELECT ` + sqliteIncidentColumns + ` FROM incidents WHERE id = ?;`

	incident, err := scanSQLiteIncident(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// Update сохраняет изменяемые поля инцидента
func (r *SQLiteIncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			description = ?,
			severity = ?,
			status = ?,
			updated_at = ?
		WHERE id = ?;
	`
	res, err := r.db.ExecContext(ctx, query,
		incident.Description,
		string(incident.Severity),
		string(incident.Status),
		r.timestamp(),
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	return affectedOrNotFound(res, incident.ID)
}

// Resolve устанавливает статус 'resolved' для инцидента
func (r *SQLiteIncidentRepository) Resolve(ctx context.Context, id int64) error {
	query := `UPDATE incidents SET status = 'resolved', updated_at = ? WHERE id = ?;`

	res, err := r.db.ExecContext(ctx, query, r.timestamp(), id)
	if err != nil {
		return fmt.Errorf("failed to resolve incident: %w", err)
	}
	return affectedOrNotFound(res, id)
}

// ListIncidents возвращает инциденты по фильтру, новые первыми
func (r *SQLiteIncidentRepository) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	where, paging, args := buildFilter(filter, question)
	query := `SELECT ` + sqliteIncidentColumns + ` FROM incidents` + where + ` ORDER BY reported_at DESC, id DESC` + paging

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectSQLiteIncidents(rows, "ListIncidents")
}

// Snapshot возвращает инциденты по фильтру в порядке id для анализа.
// При заданном Limit в снимок попадают самые новые записи.
func (r *SQLiteIncidentRepository) Snapshot(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error) {
	where, paging, args := buildFilter(filter, question)
	query := `SELECT * FROM (SELECT ` + sqliteIncidentColumns + ` FROM incidents` + where +
		` ORDER BY id DESC` + paging + `) AS recent ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	list, err := collectSQLiteIncidents(rows, "Snapshot")
	if err != nil {
		return nil, err
	}

	out := make([]models.Incident, len(list))
	for i, inc := range list {
		out[i] = *inc
	}
	return out, nil
}

// FindActiveNear находит активные инциденты в радиусе radiusMeters от точки
func (r *SQLiteIncidentRepository) FindActiveNear(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Incident, error) {
	// Прямоугольник берётся с запасом: плоское приближение чуть занижает градус на сфере
	reach := radiusMeters * bboxPadding
	dLat := reach / analysis.LatDegreesToMeters
	dLng := 180.0
	if m := analysis.LngDegreesToMeters(lat); m > reach/180 {
		dLng = reach / m
	}

	query := `SELECT ` + sqliteIncidentColumns + `
		FROM incidents
		WHERE
			status = 'active'
			AND latitude BETWEEN ? AND ?
			AND longitude BETWEEN ? AND ?
		ORDER BY id;
	`
	rows, err := r.db.QueryContext(ctx, query, lat-dLat, lat+dLat, lon-dLng, lon+dLng)
	if err != nil {
		return nil, fmt.Errorf("failed to find active incidents by location: %w", err)
	}
	candidates, err := collectSQLiteIncidents(rows, "FindActiveNear")
	if err != nil {
		return nil, err
	}

	point := analysis.LatLng{Lat: lat, Lng: lon}
	incidents := make([]*models.Incident, 0, len(candidates))
	for _, inc := range candidates {
		if analysis.DistanceMeters(point, analysis.LatLng{Lat: inc.Latitude, Lng: inc.Longitude}) <= radiusMeters {
			incidents = append(incidents, inc)
		}
	}
	return incidents, nil
}

// GetLocationCheckStats возвращает количество уникальных пользователей, проверивших геолокацию
func (r *SQLiteIncidentRepository) GetLocationCheckStats(ctx context.Context, minutes int) (int, error) {
	since := r.now().UTC().Add(-time.Duration(minutes) * time.Minute).Format(sqliteTimeLayout)
	query := `SELECT COUNT(DISTINCT user_id) FROM location_checks WHERE checked_at >= ?;`

	var count int
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get location check stats: %w", err)
	}
	return count, nil
}

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *SQLiteIncidentRepository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	now := r.timestamp()
	query := `
		INSERT INTO location_checks (user_id, latitude, longitude, is_dangerous, checked_at)
		VALUES (?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, query,
		check.UserID,
		check.Latitude,
		check.Longitude,
		check.IsDangerous,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read location check id: %w", err)
	}
	check.ID = id
	check.CheckedAt, _ = time.Parse(sqliteTimeLayout, now)
	return nil
}

func affectedOrNotFound(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	var typ, severity, status, reportedAt string
	err := row.Scan(
		&incident.ID,
		&typ,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&severity,
		&status,
		&reportedAt,
		&incident.ReporterName,
		&incident.ImagePath,
	)
	if err != nil {
		return nil, err
	}

	ts, err := time.Parse(sqliteTimeLayout, reportedAt)
	if err != nil {
		return nil, fmt.Errorf("bad reported_at %q: %w", reportedAt, err)
	}
	incident.Timestamp = ts
	incident.Type = models.IncidentType(typ)
	incident.Severity = models.Severity(severity)
	incident.Status = models.Status(status)
	return incident, nil
}

func collectSQLiteIncidents(rows *sql.Rows, op string) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanSQLiteIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in %s: %w", op, err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", op, err)
	}
	return incidents, nil
}
