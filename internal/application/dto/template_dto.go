package dto

import "time"

// SpecialAreaDTO área especial declarada de una plantilla.
type SpecialAreaDTO struct {
	Code     string `json:"code" validate:"required,min=2,max=12"`
	Type     string `json:"type" validate:"required,oneof=RECEIVING STAGING DOCK TRANSITIONAL"`
	Capacity int    `json:"capacity" validate:"min=0"`
	Zone     string `json:"zone"`
}

// LocationFormatDTO gramática de códigos declarada de una plantilla.
type LocationFormatDTO struct {
	Mode              string   `json:"mode" validate:"required,oneof=positional zoned"`
	StorageZones      []string `json:"storage_zones"`
	TransitionalZones []string `json:"transitional_zones"`
	Confidence        float64  `json:"confidence" validate:"min=0,max=1"`
}

// CreateTemplateRequest entrada para crear una plantilla de bodega.
type CreateTemplateRequest struct {
	Name              string             `json:"name" validate:"required,min=1,max=200"`
	NumAisles         int                `json:"num_aisles" validate:"required,min=1,max=99"`
	RacksPerAisle     int                `json:"racks_per_aisle" validate:"required,min=1,max=99"`
	PositionsPerRack  int                `json:"positions_per_rack" validate:"required,min=1,max=999"`
	LevelsPerPosition int                `json:"levels_per_position" validate:"min=0,max=26"`
	LevelNames        string             `json:"level_names"`
	DefaultCapacity   int                `json:"default_capacity" validate:"min=0"`
	SpecialAreas      []SpecialAreaDTO   `json:"special_areas" validate:"dive"`
	LocationFormat    *LocationFormatDTO `json:"location_format"`
	ZoneClimates      map[string]string  `json:"zone_climates"`
}

// UpdateTemplateRequest entrada para actualizar una plantilla (campos opcionales).
type UpdateTemplateRequest struct {
	Name              *string            `json:"name" validate:"omitempty,min=1,max=200"`
	NumAisles         *int               `json:"num_aisles" validate:"omitempty,min=1,max=99"`
	RacksPerAisle     *int               `json:"racks_per_aisle" validate:"omitempty,min=1,max=99"`
	PositionsPerRack  *int               `json:"positions_per_rack" validate:"omitempty,min=1,max=999"`
	LevelsPerPosition *int               `json:"levels_per_position" validate:"omitempty,min=0,max=26"`
	LevelNames        *string            `json:"level_names"`
	DefaultCapacity   *int               `json:"default_capacity" validate:"omitempty,min=0"`
	SpecialAreas      []SpecialAreaDTO   `json:"special_areas" validate:"omitempty,dive"`
	LocationFormat    *LocationFormatDTO `json:"location_format"`
	ZoneClimates      map[string]string  `json:"zone_climates"`
}

// TemplateResponse salida de una plantilla.
type TemplateResponse struct {
	ID                string             `json:"id"`
	CompanyID         string             `json:"company_id"`
	Name              string             `json:"name"`
	NumAisles         int                `json:"num_aisles"`
	RacksPerAisle     int                `json:"racks_per_aisle"`
	PositionsPerRack  int                `json:"positions_per_rack"`
	LevelsPerPosition int                `json:"levels_per_position"`
	LevelNames        string             `json:"level_names"`
	DefaultCapacity   int                `json:"default_capacity"`
	SpecialAreas      []SpecialAreaDTO   `json:"special_areas"`
	LocationFormat    *LocationFormatDTO `json:"location_format,omitempty"`
	ZoneClimates      map[string]string  `json:"zone_climates,omitempty"`
	TotalPositions    int                `json:"total_positions"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// TemplateListResponse lista de plantillas de una empresa.
type TemplateListResponse struct {
	Items []TemplateResponse `json:"items"`
}
