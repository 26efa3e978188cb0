package dto

import "time"

// ExclusionRuleDTO exclusión declarada de una regla.
type ExclusionRuleDTO struct {
	IfAnomalyType string `json:"if_anomaly_type" validate:"required"`
	MaxPrecedence int    `json:"max_precedence" validate:"required,min=1,max=4"`
}

// CreateRuleRequest entrada para crear una regla de detección.
type CreateRuleRequest struct {
	Name            string             `json:"name" validate:"required,min=1,max=200"`
	RuleType        string             `json:"rule_type" validate:"required"`
	Conditions      map[string]any     `json:"conditions"`
	Priority        string             `json:"priority" validate:"omitempty,oneof=CRITICAL HIGH MEDIUM LOW"`
	PrecedenceLevel int                `json:"precedence_level" validate:"min=0,max=4"`
	Exclusions      []ExclusionRuleDTO `json:"exclusions" validate:"dive"`
	IsActive        *bool              `json:"is_active"`
}

// UpdateRuleRequest entrada para actualizar una regla (campos opcionales).
type UpdateRuleRequest struct {
	Name            *string            `json:"name" validate:"omitempty,min=1,max=200"`
	Conditions      map[string]any     `json:"conditions"`
	Priority        *string            `json:"priority" validate:"omitempty,oneof=CRITICAL HIGH MEDIUM LOW"`
	PrecedenceLevel *int               `json:"precedence_level" validate:"omitempty,min=1,max=4"`
	Exclusions      []ExclusionRuleDTO `json:"exclusions" validate:"omitempty,dive"`
	IsActive        *bool              `json:"is_active"`
}

// RuleResponse salida de una regla.
type RuleResponse struct {
	ID              string             `json:"id"`
	CompanyID       string             `json:"company_id"`
	Name            string             `json:"name"`
	RuleType        string             `json:"rule_type"`
	Conditions      map[string]any     `json:"conditions,omitempty"`
	Priority        string             `json:"priority"`
	PrecedenceLevel int                `json:"precedence_level"`
	Exclusions      []ExclusionRuleDTO `json:"exclusions,omitempty"`
	IsActive        bool               `json:"is_active"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// RuleListResponse lista de reglas de una empresa.
type RuleListResponse struct {
	Items []RuleResponse `json:"items"`
}
