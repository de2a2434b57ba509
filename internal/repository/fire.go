package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/shenikar/wildfire_notifier/internal/service"
)

const fireColumns = `
	unique_fire_id,
	incident_name,
	global_uid,
	latitude,
	longitude,
	geohash,
	start_time,
	last_update,
	containment_time,
	control_time,
	out_time,
	discovery_acres,
	daily_acres,
	initial_response_acres,
	cause_type,
	cause_detail,
	cause_sub_detail`

type FireRepository struct {
	db *pgxpool.Pool
}

func NewFireRepository(db *pgxpool.Pool) *FireRepository {
	return &FireRepository{db: db}
}

var _ service.FireRepository = (*FireRepository)(nil)

// ListActiveFires возвращает пожары без outTime
func (r *FireRepository) ListActiveFires(ctx context.Context) ([]*models.FireRecord, error) {
	query := `SELECT ` + fireColumns + `
		FROM fires
		WHERE out_time IS NULL
		ORDER BY unique_fire_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active fires: %w", err)
	}
	defer rows.Close()

	fires := make([]*models.FireRecord, 0)
	for rows.Next() {
		fire, err := scanFire(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fire row: %w", err)
		}
		fires = append(fires, fire)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return fires, nil
}

// UpsertFires сохраняет пачку пожаров одним batch-запросом; ключ - unique_fire_id
func (r *FireRepository) UpsertFires(ctx context.Context, fires []*models.FireRecord) error {
	if len(fires) == 0 {
		return nil
	}

	query := `
		INSERT INTO fires (` + fireColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (unique_fire_id) DO UPDATE SET
			incident_name = EXCLUDED.incident_name,
			global_uid = EXCLUDED.global_uid,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			geohash = EXCLUDED.geohash,
			start_time = EXCLUDED.start_time,
			last_update = EXCLUDED.last_update,
			containment_time = EXCLUDED.containment_time,
			control_time = EXCLUDED.control_time,
			out_time = EXCLUDED.out_time,
			discovery_acres = EXCLUDED.discovery_acres,
			daily_acres = EXCLUDED.daily_acres,
			initial_response_acres = EXCLUDED.initial_response_acres,
			cause_type = EXCLUDED.cause_type,
			cause_detail = EXCLUDED.cause_detail,
			cause_sub_detail = EXCLUDED.cause_sub_detail,
			updated_at = NOW();
	`

	batch := &pgx.Batch{}
	for _, f := range fires {
		batch.Queue(query,
			f.UniqueFireID,
			f.IncidentName,
			f.GlobalUID,
			f.Latitude,
			f.Longitude,
			f.Geohash,
			f.StartTime,
			f.LastUpdate,
			f.ContainmentTime,
			f.ControlTime,
			f.OutTime,
			f.DiscoveryAcres,
			f.DailyAcres,
			f.InitialResponseAcres,
			f.CauseType,
			f.CauseDetail,
			f.CauseSubDetail,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for _, f := range fires {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert fire %s: %w", f.UniqueFireID, err)
		}
	}
	return nil
}

func scanFire(row pgx.Row) (*models.FireRecord, error) {
	fire := &models.FireRecord{}
	err := row.Scan(
		&fire.UniqueFireID,
		&fire.IncidentName,
		&fire.GlobalUID,
		&fire.Latitude,
		&fire.Longitude,
		&fire.Geohash,
		&fire.StartTime,
		&fire.LastUpdate,
		&fire.ContainmentTime,
		&fire.ControlTime,
		&fire.OutTime,
		&fire.DiscoveryAcres,
		&fire.DailyAcres,
		&fire.InitialResponseAcres,
		&fire.CauseType,
		&fire.CauseDetail,
		&fire.CauseSubDetail,
	)
	if err != nil {
		return nil, err
	}
	return fire, nil
}
