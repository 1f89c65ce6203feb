package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Estacionamento-api/internal/domain"
	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
)

var _ repository.ExitRepository = (*ExitRepo)(nil)

const exitColumns = `id, plate, category, vehicle_key, entry_at, exit_at, stay_seconds, method, fee, created_by, created_at`

// ExitRepo implementación del puerto ExitRepository sobre la tabla parking_exits.
type ExitRepo struct {
	pool *pgxpool.Pool
}

// NewExitRepository construye el adaptador de persistencia para salidas.
func NewExitRepository(pool *pgxpool.Pool) *ExitRepo {
	return &ExitRepo{pool: pool}
}

// Create persiste una salida. fee es NUMERIC(12,2) vía el codec de pgx-shopspring-decimal.
func (r *ExitRepo) Create(ctx context.Context, rec *entity.ExitRecord) error {
	query := `
		INSERT INTO parking_exits (` + exitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.Plate, rec.Category, rec.VehicleKey, rec.EntryAt, rec.ExitAt,
		rec.StaySeconds, rec.Method, rec.Fee, rec.CreatedBy, rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert parking exit: %w", err)
	}
	return nil
}

// GetByID obtiene una salida; nil si no existe.
func (r *ExitRepo) GetByID(ctx context.Context, id string) (*entity.ExitRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+exitColumns+` FROM parking_exits WHERE id = $1`, id)
	rec, err := scanExit(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get parking exit: %w", err)
	}
	return rec, nil
}

// List salidas ordenadas por exit_at descendente.
func (r *ExitRepo) List(ctx context.Context, limit, offset int) ([]*entity.ExitRecord, error) {
	query := `SELECT ` + exitColumns + ` FROM parking_exits ORDER BY exit_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parking exits: %w", err)
	}
	return collectExits(rows)
}

// ListBetween salidas con exit_at en [from, to).
func (r *ExitRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.ExitRecord, error) {
	query := `SELECT ` + exitColumns + ` FROM parking_exits WHERE exit_at >= $1 AND exit_at < $2 ORDER BY exit_at DESC`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list parking exits between: %w", err)
	}
	return collectExits(rows)
}

func collectExits(rows pgx.Rows) ([]*entity.ExitRecord, error) {
	defer rows.Close()
	var out []*entity.ExitRecord
	for rows.Next() {
		rec, err := scanExit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parking exit: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanExit(row pgx.Row) (*entity.ExitRecord, error) {
	var rec entity.ExitRecord
	err := row.Scan(
		&rec.ID, &rec.Plate, &rec.Category, &rec.VehicleKey, &rec.EntryAt, &rec.ExitAt,
		&rec.StaySeconds, &rec.Method, &rec.Fee, &rec.CreatedBy, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
