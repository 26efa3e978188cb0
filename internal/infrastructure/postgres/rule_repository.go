package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

var _ repository.RuleDefinitionRepository = (*RuleDefinitionRepo)(nil)

// RuleDefinitionRepo implementación del puerto RuleDefinitionRepository sobre
// PostgreSQL. Condiciones y exclusiones se guardan como JSONB: su forma depende
// del tipo de regla y el motor ya tolera claves desconocidas.
type RuleDefinitionRepo struct {
	pool *pgxpool.Pool
}

// NewRuleDefinitionRepository construye el adaptador de persistencia para reglas.
func NewRuleDefinitionRepository(pool *pgxpool.Pool) *RuleDefinitionRepo {
	return &RuleDefinitionRepo{pool: pool}
}

// Create persiste una regla nueva.
func (r *RuleDefinitionRepo) Create(rule *entity.RuleDefinition) error {
	conditions, exclusions, err := marshalRuleJSON(rule)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO rule_definitions
			(id, company_id, name, rule_type, conditions, priority, precedence_level,
			 exclusions, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.pool.Exec(context.Background(), query,
		rule.ID, rule.CompanyID, rule.Name, rule.RuleType, conditions, rule.Priority,
		rule.PrecedenceLevel, exclusions, rule.IsActive, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *RuleDefinitionRepo) GetByID(id string) (*entity.RuleDefinition, error) {
	query := ruleSelect + ` WHERE id = $1`
	rule, err := scanRule(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rule: %w", err)
	}
	return rule, nil
}

// Update actualiza una regla existente.
func (r *RuleDefinitionRepo) Update(rule *entity.RuleDefinition) error {
	conditions, exclusions, err := marshalRuleJSON(rule)
	if err != nil {
		return err
	}
	query := `
		UPDATE rule_definitions SET
			name = $2, conditions = $3, priority = $4, precedence_level = $5,
			exclusions = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err = r.pool.Exec(context.Background(), query,
		rule.ID, rule.Name, conditions, rule.Priority, rule.PrecedenceLevel,
		exclusions, rule.IsActive, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rule: %w", err)
	}
	return nil
}

// ListByCompany lista todas las reglas de la empresa.
func (r *RuleDefinitionRepo) ListByCompany(companyID string) ([]*entity.RuleDefinition, error) {
	query := ruleSelect + ` WHERE company_id = $1 ORDER BY created_at`
	return r.queryRules(query, companyID)
}

// ListActiveByCompany lista solo las reglas activas (las que corre el motor).
func (r *RuleDefinitionRepo) ListActiveByCompany(companyID string) ([]*entity.RuleDefinition, error) {
	query := ruleSelect + ` WHERE company_id = $1 AND is_active ORDER BY created_at`
	return r.queryRules(query, companyID)
}

// Delete elimina una regla por ID.
func (r *RuleDefinitionRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM rule_definitions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return nil
}

const ruleSelect = `
	SELECT id, company_id, name, rule_type, conditions, priority, precedence_level,
	       exclusions, is_active, created_at, updated_at
	FROM rule_definitions`

func (r *RuleDefinitionRepo) queryRules(query string, args ...any) ([]*entity.RuleDefinition, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.RuleDefinition
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		list = append(list, rule)
	}
	return list, rows.Err()
}

func marshalRuleJSON(rule *entity.RuleDefinition) (conditions, exclusions []byte, err error) {
	if len(rule.Conditions) > 0 {
		conditions, err = json.Marshal(rule.Conditions)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal conditions: %w", err)
		}
	}
	if len(rule.Exclusions) > 0 {
		exclusions, err = json.Marshal(rule.Exclusions)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal exclusions: %w", err)
		}
	}
	return conditions, exclusions, nil
}

func scanRule(row pgx.Row) (*entity.RuleDefinition, error) {
	var rule entity.RuleDefinition
	var conditions, exclusions []byte
	err := row.Scan(
		&rule.ID, &rule.CompanyID, &rule.Name, &rule.RuleType, &conditions, &rule.Priority,
		&rule.PrecedenceLevel, &exclusions, &rule.IsActive, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(conditions) > 0 {
		if err := json.Unmarshal(conditions, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("unmarshal conditions: %w", err)
		}
	}
	if len(exclusions) > 0 {
		if err := json.Unmarshal(exclusions, &rule.Exclusions); err != nil {
			return nil, fmt.Errorf("unmarshal exclusions: %w", err)
		}
	}
	return &rule, nil
}
