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

type memCompanyRepo struct {
	porID  map[string]*entity.Company
	porNIT map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{
		porID:  make(map[string]*entity.Company),
		porNIT: make(map[string]*entity.Company),
	}
}

func (m *memCompanyRepo) Create(c *entity.Company) error {
	m.porID[c.ID] = c
	m.porNIT[c.NIT] = c
	return nil
}
func (m *memCompanyRepo) GetByID(id string) (*entity.Company, error)   { return m.porID[id], nil }
func (m *memCompanyRepo) GetByNIT(nit string) (*entity.Company, error) { return m.porNIT[nit], nil }
func (m *memCompanyRepo) Update(c *entity.Company) error               { m.porID[c.ID] = c; return nil }
func (m *memCompanyRepo) Delete(id string) error                       { delete(m.porID, id); return nil }
func (m *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range m.porID {
		out = append(out, c)
	}
	return out, nil
}

func TestCompanyUseCase_CreateValidaDigitoNIT(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo())

	// 900123456 → dígito correcto 8; con 7 debe rechazar.
	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme", NIT: "900123456-7"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "esperado 8")
}

func TestCompanyUseCase_CreateAceptaNITValido(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo())

	resp, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme", NIT: "900123456-8"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "900123456-8", resp.NIT)
}

func TestCompanyUseCase_CreateRechazaNITDuplicado(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme", NIT: "900123456-8"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Acme Dos", NIT: "900123456-8"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
