package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bodega-radar/internal/application/dto"
	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

// TemplateCacheInvalidator invalida la caché de plantillas de una empresa.
// Lo implementa el catálogo de análisis; toda edición de plantilla DEBE
// invalidarla para que la siguiente corrida vea el layout nuevo.
type TemplateCacheInvalidator interface {
	Invalidate(companyID string)
}

// TemplateUseCase casos de uso CRUD para plantillas de bodega.
type TemplateUseCase struct {
	repo        repository.WarehouseTemplateRepository
	invalidator TemplateCacheInvalidator
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(repo repository.WarehouseTemplateRepository, invalidator TemplateCacheInvalidator) *TemplateUseCase {
	return &TemplateUseCase{repo: repo, invalidator: invalidator}
}

// Create crea una plantilla nueva para la empresa.
func (uc *TemplateUseCase) Create(companyID string, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if in.NumAisles < 1 || in.RacksPerAisle < 1 || in.PositionsPerRack < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	template := &entity.WarehouseTemplate{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              in.Name,
		NumAisles:         in.NumAisles,
		RacksPerAisle:     in.RacksPerAisle,
		PositionsPerRack:  in.PositionsPerRack,
		LevelsPerPosition: in.LevelsPerPosition,
		LevelNames:        strings.ToUpper(in.LevelNames),
		DefaultCapacity:   in.DefaultCapacity,
		SpecialAreas:      areasFromDTO(in.SpecialAreas),
		LocationFormat:    formatFromDTO(in.LocationFormat),
		ZoneClimates:      in.ZoneClimates,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(template); err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(companyID)
	return toTemplateResponse(template), nil
}

// GetByID obtiene una plantilla por ID.
func (uc *TemplateUseCase) GetByID(id string) (*dto.TemplateResponse, error) {
	template, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, nil
	}
	return toTemplateResponse(template), nil
}

// Update actualiza una plantilla e invalida la caché de su empresa.
func (uc *TemplateUseCase) Update(id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	template, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, nil
	}
	if in.Name != nil {
		template.Name = *in.Name
	}
	if in.NumAisles != nil {
		template.NumAisles = *in.NumAisles
	}
	if in.RacksPerAisle != nil {
		template.RacksPerAisle = *in.RacksPerAisle
	}
	if in.PositionsPerRack != nil {
		template.PositionsPerRack = *in.PositionsPerRack
	}
	if in.LevelsPerPosition != nil {
		template.LevelsPerPosition = *in.LevelsPerPosition
	}
	if in.LevelNames != nil {
		template.LevelNames = strings.ToUpper(*in.LevelNames)
	}
	if in.DefaultCapacity != nil {
		template.DefaultCapacity = *in.DefaultCapacity
	}
	if in.SpecialAreas != nil {
		template.SpecialAreas = areasFromDTO(in.SpecialAreas)
	}
	if in.LocationFormat != nil {
		template.LocationFormat = formatFromDTO(in.LocationFormat)
	}
	if in.ZoneClimates != nil {
		template.ZoneClimates = in.ZoneClimates
	}
	template.UpdatedAt = time.Now()
	if err := uc.repo.Update(template); err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(template.CompanyID)
	return toTemplateResponse(template), nil
}

// List lista las plantillas de la empresa.
func (uc *TemplateUseCase) List(companyID string) (*dto.TemplateListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTemplateResponse(t))
	}
	return &dto.TemplateListResponse{Items: items}, nil
}

// Delete elimina una plantilla e invalida la caché de su empresa.
func (uc *TemplateUseCase) Delete(id string) error {
	template, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if template == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.invalidator.Invalidate(template.CompanyID)
	return nil
}

func areasFromDTO(in []dto.SpecialAreaDTO) []entity.SpecialArea {
	if in == nil {
		return nil
	}
	out := make([]entity.SpecialArea, len(in))
	for i, a := range in {
		out[i] = entity.SpecialArea{
			Code:     strings.ToUpper(strings.TrimSpace(a.Code)),
			Type:     strings.ToUpper(a.Type),
			Capacity: a.Capacity,
			Zone:     a.Zone,
		}
	}
	return out
}

func formatFromDTO(in *dto.LocationFormatDTO) *entity.LocationFormat {
	if in == nil {
		return nil
	}
	return &entity.LocationFormat{
		Mode:              in.Mode,
		StorageZones:      in.StorageZones,
		TransitionalZones: in.TransitionalZones,
		Confidence:        in.Confidence,
	}
}

func formatToDTO(in *entity.LocationFormat) *dto.LocationFormatDTO {
	if in == nil {
		return nil
	}
	return &dto.LocationFormatDTO{
		Mode:              in.Mode,
		StorageZones:      in.StorageZones,
		TransitionalZones: in.TransitionalZones,
		Confidence:        in.Confidence,
	}
}

func toTemplateResponse(t *entity.WarehouseTemplate) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	areas := make([]dto.SpecialAreaDTO, len(t.SpecialAreas))
	for i, a := range t.SpecialAreas {
		areas[i] = dto.SpecialAreaDTO{Code: a.Code, Type: a.Type, Capacity: a.Capacity, Zone: a.Zone}
	}
	return &dto.TemplateResponse{
		ID:                t.ID,
		CompanyID:         t.CompanyID,
		Name:              t.Name,
		NumAisles:         t.NumAisles,
		RacksPerAisle:     t.RacksPerAisle,
		PositionsPerRack:  t.PositionsPerRack,
		LevelsPerPosition: t.LevelsPerPosition,
		LevelNames:        t.LevelNames,
		DefaultCapacity:   t.DefaultCapacity,
		SpecialAreas:      areas,
		LocationFormat:    formatToDTO(t.LocationFormat),
		ZoneClimates:      t.ZoneClimates,
		TotalPositions:    t.TotalPositions(),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
