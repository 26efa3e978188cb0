package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bodega-radar/internal/application/dto"
	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/analysis"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

// RuleUseCase casos de uso CRUD para reglas de detección.
type RuleUseCase struct {
	repo repository.RuleDefinitionRepository
}

// NewRuleUseCase construye el caso de uso.
func NewRuleUseCase(repo repository.RuleDefinitionRepository) *RuleUseCase {
	return &RuleUseCase{repo: repo}
}

// Create crea una regla para la empresa. El tipo debe pertenecer al registro
// cerrado del motor; la precedencia en 0 toma el valor por defecto del tipo.
func (uc *RuleUseCase) Create(companyID string, in dto.CreateRuleRequest) (*dto.RuleResponse, error) {
	if !entity.IsKnownRuleType(in.RuleType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRuleType, in.RuleType)
	}
	precedence := in.PrecedenceLevel
	if precedence == 0 {
		precedence = analysis.DefaultPrecedence(in.RuleType)
	}
	now := time.Now()
	rule := &entity.RuleDefinition{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		RuleType:        in.RuleType,
		Conditions:      entity.RuleConditions(in.Conditions),
		Priority:        in.Priority,
		PrecedenceLevel: precedence,
		Exclusions:      exclusionsFromDTO(in.Exclusions),
		IsActive:        defaultActive(in.RuleType, in.IsActive),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	return toRuleResponse(rule), nil
}

// GetByID obtiene una regla por ID.
func (uc *RuleUseCase) GetByID(id string) (*dto.RuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}
	return toRuleResponse(rule), nil
}

// Update actualiza una regla. El tipo no es editable: cambiar la semántica de una
// regla existente invalidaría el histórico de reportes que la citan.
func (uc *RuleUseCase) Update(id string, in dto.UpdateRuleRequest) (*dto.RuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}
	if in.Name != nil {
		rule.Name = *in.Name
	}
	if in.Conditions != nil {
		rule.Conditions = entity.RuleConditions(in.Conditions)
	}
	if in.Priority != nil {
		rule.Priority = *in.Priority
	}
	if in.PrecedenceLevel != nil {
		rule.PrecedenceLevel = *in.PrecedenceLevel
	}
	if in.Exclusions != nil {
		rule.Exclusions = exclusionsFromDTO(in.Exclusions)
	}
	if in.IsActive != nil {
		rule.IsActive = *in.IsActive
	}
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	return toRuleResponse(rule), nil
}

// List lista las reglas de la empresa (activas e inactivas).
func (uc *RuleUseCase) List(companyID string) (*dto.RuleListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RuleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRuleResponse(r))
	}
	return &dto.RuleListResponse{Items: items}, nil
}

// Delete elimina una regla.
func (uc *RuleUseCase) Delete(id string) error {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rule == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// defaultActive resuelve el estado inicial de la regla. Sin valor explícito todas
// nacen activas salvo LOCATION_TYPE_MISMATCH, que exige una columna del feed que
// casi ningún origen trae.
func defaultActive(ruleType string, explicit *bool) bool {
	if explicit != nil {
		return *explicit
	}
	return ruleType != entity.RuleTypeLocationTypeMismatch
}

func exclusionsFromDTO(in []dto.ExclusionRuleDTO) []entity.ExclusionRule {
	if in == nil {
		return nil
	}
	out := make([]entity.ExclusionRule, len(in))
	for i, e := range in {
		out[i] = entity.ExclusionRule{IfAnomalyType: e.IfAnomalyType, MaxPrecedence: e.MaxPrecedence}
	}
	return out
}

func toRuleResponse(r *entity.RuleDefinition) *dto.RuleResponse {
	if r == nil {
		return nil
	}
	exclusions := make([]dto.ExclusionRuleDTO, len(r.Exclusions))
	for i, e := range r.Exclusions {
		exclusions[i] = dto.ExclusionRuleDTO{IfAnomalyType: e.IfAnomalyType, MaxPrecedence: e.MaxPrecedence}
	}
	return &dto.RuleResponse{
		ID:              r.ID,
		CompanyID:       r.CompanyID,
		Name:            r.Name,
		RuleType:        r.RuleType,
		Conditions:      r.Conditions,
		Priority:        r.Priority,
		PrecedenceLevel: r.PrecedenceLevel,
		Exclusions:      exclusions,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
