package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DoctFaust/campus-info-system/internal/models"
	"github.com/DoctFaust/campus-info-system/internal/service"
)

const pgIncidentColumns = `
	id,
	type,
	description,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	severity,
	status,
	reported_at,
	reporter_name,
	image_path`

type PostgresIncidentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &PostgresIncidentRepository{db: db}
}

// Create создает новую запись об инциденте в бд
func (r *PostgresIncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (type, description, location, severity, status, reporter_name, image_path)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7, $8)
		RETURNING id, reported_at;
	`
	err := r.db.QueryRow(ctx, query,
		string(incident.Type),
		incident.Description,
		incident.Longitude,
		incident.Latitude,
		string(incident.Severity),
		string(incident.Status),
		incident.ReporterName,
		incident.ImagePath,
	).Scan(&incident.ID, &incident.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его ID
func (r *PostgresIncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	query := `SELECT ` + pgIncidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanPgIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// Update сохраняет изменяемые поля инцидента
func (r *PostgresIncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			description = $1,
			severity = $2,
			status = $3,
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.Description,
		string(incident.Severity),
		string(incident.Status),
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}

	// RowsAffected() == 0 - инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d: %w", incident.ID, service.ErrNotFound)
	}
	return nil
}

// Resolve устанавливает статус 'resolved' для инцидента
func (r *PostgresIncidentRepository) Resolve(ctx context.Context, id int64) error {
	query := `
		UPDATE incidents SET
			status = 'resolved',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to resolve incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListIncidents возвращает инциденты по фильтру, новые первыми
func (r *PostgresIncidentRepository) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	where, paging, args := buildFilter(filter, dollar)
	query := `SELECT ` + pgIncidentColumns + ` FROM incidents` + where + ` ORDER BY reported_at DESC, id DESC` + paging

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectPgIncidents(rows, "ListIncidents")
}

// Snapshot возвращает инциденты по фильтру в порядке id для анализа.
// При заданном Limit в снимок попадают самые новые записи.
func (r *PostgresIncidentRepository) Snapshot(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error) {
	where, paging, args := buildFilter(filter, dollar)
	query := `SELECT * FROM (SELECT ` + pgIncidentColumns + ` FROM incidents` + where +
		` ORDER BY id DESC` + paging + `) AS recent ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	list, err := collectPgIncidents(rows, "Snapshot")
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
func (r *PostgresIncidentRepository) FindActiveNear(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Incident, error) {
	query := `SELECT ` + pgIncidentColumns + `
		FROM incidents
		WHERE
			status = 'active'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find active incidents by location: %w", err)
	}
	return collectPgIncidents(rows, "FindActiveNear")
}

// GetLocationCheckStats возвращает количество уникальных пользователей, проверивших геолокацию
func (r *PostgresIncidentRepository) GetLocationCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM location_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get location check stats: %w", err)
	}
	return count, nil
}

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *PostgresIncidentRepository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	query := `
		INSERT INTO location_checks (user_id, location, is_dangerous)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Longitude,
		check.Latitude,
		check.IsDangerous,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}
	return nil
}

func scanPgIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var typ, severity, status string
	err := row.Scan(
		&incident.ID,
		&typ,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&severity,
		&status,
		&incident.Timestamp,
		&incident.ReporterName,
		&incident.ImagePath,
	)
	if err != nil {
		return nil, err
	}
	incident.Type = models.IncidentType(typ)
	incident.Severity = models.Severity(severity)
	incident.Status = models.Status(status)
	return incident, nil
}

func collectPgIncidents(rows pgx.Rows, op string) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanPgIncident(rows)
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
