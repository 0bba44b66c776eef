package models

import (
	"encoding/json"
	"time"
)

// ConfigEntry stores one named site setting. Value is arbitrary JSON; the
// admin form that owns the key decides its shape, so new settings need no
// migration.
type ConfigEntry struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Key       string          `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value     json.RawMessage `gorm:"type:json" json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (ConfigEntry) TableName() string { return "config_entries" }

// SectionColorsKey holds the per-section background style map, keyed by
// section name (hero, services, testimonials, ...).
const SectionColorsKey = "section_colors"

// SectionStyle is the typed shape of one entry in the section_colors map.
type SectionStyle struct {
	BackgroundType    string   `json:"background_type" binding:"required,oneof=solid gradient pattern"`
	BackgroundColor   string   `json:"background_color"`
	GradientColors    []string `json:"gradient_colors"`
	GradientDirection string   `json:"gradient_direction"`
	Opacity           *float64 `json:"opacity,omitempty"`
	OverlayColor      string   `json:"overlay_color,omitempty"`
	OverlayOpacity    *float64 `json:"overlay_opacity,omitempty"`
}
