package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

var _ repository.WarehouseTemplateRepository = (*WarehouseTemplateRepo)(nil)

// WarehouseTemplateRepo implementación del puerto WarehouseTemplateRepository
// sobre PostgreSQL. Las áreas especiales viven en su propia tabla para conservar
// el orden declarado; el formato y los climas van como JSONB.
type WarehouseTemplateRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseTemplateRepository construye el adaptador de persistencia para plantillas.
func NewWarehouseTemplateRepository(pool *pgxpool.Pool) *WarehouseTemplateRepo {
	return &WarehouseTemplateRepo{pool: pool}
}

// Create persiste una plantilla nueva junto con sus áreas especiales.
func (r *WarehouseTemplateRepo) Create(t *entity.WarehouseTemplate) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create template: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	format, climates, err := marshalTemplateJSON(t)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO warehouse_templates
			(id, company_id, name, num_aisles, racks_per_aisle, positions_per_rack,
			 levels_per_position, level_names, default_capacity, location_format,
			 zone_climates, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.Exec(ctx, query,
		t.ID, t.CompanyID, t.Name, t.NumAisles, t.RacksPerAisle, t.PositionsPerRack,
		t.LevelsPerPosition, t.LevelNames, t.DefaultCapacity, format,
		climates, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert template: %w", err)
	}
	if err := insertSpecialAreas(ctx, tx, t.ID, t.SpecialAreas); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID con sus áreas en orden declarado.
func (r *WarehouseTemplateRepo) GetByID(id string) (*entity.WarehouseTemplate, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, name, num_aisles, racks_per_aisle, positions_per_rack,
		       levels_per_position, level_names, default_capacity, location_format,
		       zone_climates, created_at, updated_at
		FROM warehouse_templates WHERE id = $1`
	t, err := scanTemplate(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	areas, err := loadSpecialAreas(ctx, r.pool, []string{t.ID})
	if err != nil {
		return nil, err
	}
	t.SpecialAreas = areas[t.ID]
	return t, nil
}

// Update reemplaza la plantilla y su lista completa de áreas especiales.
func (r *WarehouseTemplateRepo) Update(t *entity.WarehouseTemplate) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update template: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	format, climates, err := marshalTemplateJSON(t)
	if err != nil {
		return err
	}
	query := `
		UPDATE warehouse_templates SET
			name = $2, num_aisles = $3, racks_per_aisle = $4, positions_per_rack = $5,
			levels_per_position = $6, level_names = $7, default_capacity = $8,
			location_format = $9, zone_climates = $10, updated_at = $11
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		t.ID, t.Name, t.NumAisles, t.RacksPerAisle, t.PositionsPerRack,
		t.LevelsPerPosition, t.LevelNames, t.DefaultCapacity,
		format, climates, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM warehouse_special_areas WHERE template_id = $1`, t.ID); err != nil {
		return fmt.Errorf("clear special areas: %w", err)
	}
	if err := insertSpecialAreas(ctx, tx, t.ID, t.SpecialAreas); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update template: %w", err)
	}
	return nil
}

// ListByCompany lista TODAS las plantillas de la empresa (sin paginar: son las
// candidatas de la detección de contexto y se cachean completas).
func (r *WarehouseTemplateRepo) ListByCompany(companyID string) ([]*entity.WarehouseTemplate, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, name, num_aisles, racks_per_aisle, positions_per_rack,
		       levels_per_position, level_names, default_capacity, location_format,
		       zone_climates, created_at, updated_at
		FROM warehouse_templates WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var list []*entity.WarehouseTemplate
	var ids []string
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	areas, err := loadSpecialAreas(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range list {
		t.SpecialAreas = areas[t.ID]
	}
	return list, nil
}

// Delete elimina una plantilla; las áreas caen por cascada.
func (r *WarehouseTemplateRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM warehouse_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

func marshalTemplateJSON(t *entity.WarehouseTemplate) (format, climates []byte, err error) {
	if t.LocationFormat != nil {
		format, err = json.Marshal(t.LocationFormat)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal location format: %w", err)
		}
	}
	if len(t.ZoneClimates) > 0 {
		climates, err = json.Marshal(t.ZoneClimates)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal zone climates: %w", err)
		}
	}
	return format, climates, nil
}

func scanTemplate(row pgx.Row) (*entity.WarehouseTemplate, error) {
	var t entity.WarehouseTemplate
	var format, climates []byte
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.NumAisles, &t.RacksPerAisle, &t.PositionsPerRack,
		&t.LevelsPerPosition, &t.LevelNames, &t.DefaultCapacity, &format,
		&climates, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(format) > 0 {
		t.LocationFormat = &entity.LocationFormat{}
		if err := json.Unmarshal(format, t.LocationFormat); err != nil {
			return nil, fmt.Errorf("unmarshal location format: %w", err)
		}
	}
	if len(climates) > 0 {
		if err := json.Unmarshal(climates, &t.ZoneClimates); err != nil {
			return nil, fmt.Errorf("unmarshal zone climates: %w", err)
		}
	}
	return &t, nil
}

func insertSpecialAreas(ctx context.Context, tx pgx.Tx, templateID string, areas []entity.SpecialArea) error {
	for i, a := range areas {
		_, err := tx.Exec(ctx, `
			INSERT INTO warehouse_special_areas (template_id, ordinal, code, type, capacity, zone)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			templateID, i, a.Code, a.Type, a.Capacity, a.Zone,
		)
		if err != nil {
			return fmt.Errorf("insert special area %s: %w", a.Code, err)
		}
	}
	return nil
}

func loadSpecialAreas(ctx context.Context, pool *pgxpool.Pool, templateIDs []string) (map[string][]entity.SpecialArea, error) {
	rows, err := pool.Query(ctx, `
		SELECT template_id, code, type, capacity, zone
		FROM warehouse_special_areas
		WHERE template_id = ANY($1)
		ORDER BY template_id, ordinal`, templateIDs)
	if err != nil {
		return nil, fmt.Errorf("load special areas: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.SpecialArea)
	for rows.Next() {
		var id string
		var a entity.SpecialArea
		if err := rows.Scan(&id, &a.Code, &a.Type, &a.Capacity, &a.Zone); err != nil {
			return nil, fmt.Errorf("scan special area: %w", err)
		}
		out[id] = append(out[id], a)
	}
	return out, rows.Err()
}
