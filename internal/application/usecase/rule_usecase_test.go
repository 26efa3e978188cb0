package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-radar/internal/application/dto"
	"github.com/jhoicas/bodega-radar/internal/application/usecase"
	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

type memRuleRepo struct {
	porID map[string]*entity.RuleDefinition
}

func newMemRuleRepo() *memRuleRepo {
	return &memRuleRepo{porID: make(map[string]*entity.RuleDefinition)}
}

func (m *memRuleRepo) Create(r *entity.RuleDefinition) error             { m.porID[r.ID] = r; return nil }
func (m *memRuleRepo) GetByID(id string) (*entity.RuleDefinition, error) { return m.porID[id], nil }
func (m *memRuleRepo) Update(r *entity.RuleDefinition) error             { m.porID[r.ID] = r; return nil }
func (m *memRuleRepo) Delete(id string) error                            { delete(m.porID, id); return nil }
func (m *memRuleRepo) ListByCompany(companyID string) ([]*entity.RuleDefinition, error) {
	var out []*entity.RuleDefinition
	for _, r := range m.porID {
		if r.CompanyID == companyID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *memRuleRepo) ListActiveByCompany(companyID string) ([]*entity.RuleDefinition, error) {
	todas, _ := m.ListByCompany(companyID)
	var activas []*entity.RuleDefinition
	for _, r := range todas {
		if r.IsActive {
			activas = append(activas, r)
		}
	}
	return activas, nil
}

func TestRuleUseCase_CreateRechazaTipoDesconocido(t *testing.T) {
	uc := usecase.NewRuleUseCase(newMemRuleRepo())

	_, err := uc.Create("co-1", dto.CreateRuleRequest{Name: "Rara", RuleType: "RULE_X"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownRuleType)
	assert.Contains(t, err.Error(), "RULE_X")
}

func TestRuleUseCase_CreateAsignaPrecedenciaPorDefecto(t *testing.T) {
	uc := usecase.NewRuleUseCase(newMemRuleRepo())

	casos := []struct {
		tipo        string
		precedencia int
	}{
		{entity.RuleTypeDataIntegrity, entity.PrecedenceIntegrity},
		{entity.RuleTypeInvalidLocation, entity.PrecedenceLocation},
		{entity.RuleTypeOvercapacity, entity.PrecedenceCapacity},
		{entity.RuleTypeStagnantPallets, entity.PrecedenceFlow},
	}
	for _, c := range casos {
		resp, err := uc.Create("co-1", dto.CreateRuleRequest{Name: c.tipo, RuleType: c.tipo})
		require.NoError(t, err, c.tipo)
		assert.Equal(t, c.precedencia, resp.PrecedenceLevel, c.tipo)
	}
}

func TestRuleUseCase_CreateRespetaPrecedenciaExplicita(t *testing.T) {
	uc := usecase.NewRuleUseCase(newMemRuleRepo())

	resp, err := uc.Create("co-1", dto.CreateRuleRequest{
		Name: "Sobrecupo estricto", RuleType: entity.RuleTypeOvercapacity, PrecedenceLevel: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.PrecedenceLevel)
}

func TestRuleUseCase_ActivacionPorDefecto(t *testing.T) {
	uc := usecase.NewRuleUseCase(newMemRuleRepo())

	normal, err := uc.Create("co-1", dto.CreateRuleRequest{Name: "Estancados", RuleType: entity.RuleTypeStagnantPallets})
	require.NoError(t, err)
	assert.True(t, normal.IsActive)

	// LOCATION_TYPE_MISMATCH exige una columna del feed poco común: nace apagada.
	tipos, err := uc.Create("co-1", dto.CreateRuleRequest{Name: "Tipos", RuleType: entity.RuleTypeLocationTypeMismatch})
	require.NoError(t, err)
	assert.False(t, tipos.IsActive)

	encendida := true
	forzada, err := uc.Create("co-1", dto.CreateRuleRequest{
		Name: "Tipos forzada", RuleType: entity.RuleTypeLocationTypeMismatch, IsActive: &encendida,
	})
	require.NoError(t, err)
	assert.True(t, forzada.IsActive)
}

func TestRuleUseCase_UpdateApagaRegla(t *testing.T) {
	repo := newMemRuleRepo()
	uc := usecase.NewRuleUseCase(repo)

	creada, err := uc.Create("co-1", dto.CreateRuleRequest{Name: "Sobrecupo", RuleType: entity.RuleTypeOvercapacity})
	require.NoError(t, err)

	apagada := false
	resp, err := uc.Update(creada.ID, dto.UpdateRuleRequest{IsActive: &apagada})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	activas, err := repo.ListActiveByCompany("co-1")
	require.NoError(t, err)
	assert.Empty(t, activas)
}

func TestRuleUseCase_DeleteInexistente(t *testing.T) {
	uc := usecase.NewRuleUseCase(newMemRuleRepo())

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
