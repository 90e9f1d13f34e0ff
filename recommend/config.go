// SPDX-License-Identifier: MIT

package recommend

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Weights scales each scorer before merging.
type Weights struct {
	Collaborative float64 `koanf:"collaborative" validate:"gte=0,lte=1"`
	Content       float64 `koanf:"content" validate:"gte=0,lte=1"`
}

// ContentConfig holds the content-based scoring coefficients.
type ContentConfig struct {
	// Author, Category and Year weight the normalized preference of each attribute.
	Author   float64 `koanf:"author" validate:"gte=0,lte=1"`
	Category float64 `koanf:"category" validate:"gte=0,lte=1"`
	Year     float64 `koanf:"year" validate:"gte=0,lte=1"`

	// HighRatingBonus is added when a book's catalog average reaches HighRatingThreshold.
	HighRatingBonus     float64 `koanf:"high_rating_bonus" validate:"gte=0,lte=1"`
	HighRatingThreshold float64 `koanf:"high_rating_threshold" validate:"gte=1,lte=5"`

	// MinScore is the exclusive lower bound a candidate must exceed.
	MinScore float64 `koanf:"min_score" validate:"gte=0,lt=1"`
}

// Config contains all configuration for the recommendation engine.
type Config struct {
	Weights Weights       `koanf:"weights"`
	Content ContentConfig `koanf:"content"`

	// MinLikedStars is the lowest rating treated as "liked" by both scorers.
	MinLikedStars int `koanf:"min_liked_stars" validate:"gte=1,lte=5"`

	// DefaultCount is the result size callers use when none was requested.
	DefaultCount int `koanf:"default_count" validate:"gte=1,lte=1000"`

	// ReasonSeparator joins reasons of a book found by several scorers.
	ReasonSeparator string `koanf:"reason_separator" validate:"required"`
}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{Collaborative: 0.6, Content: 0.4},
		Content: ContentConfig{
			Author:              0.4,
			Category:            0.5,
			Year:                0.1,
			HighRatingBonus:     0.1,
			HighRatingThreshold: 4.0,
			MinScore:            0.3,
		},
		MinLikedStars:   4,
		DefaultCount:    10,
		ReasonSeparator: " · ",
	}
}

// Validate checks field ranges and that at least one scorer carries weight.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Weights.Collaborative+c.Weights.Content == 0 {
		return fmt.Errorf("%w: all scorer weights are zero", ErrInvalidConfig)
	}
	return nil
}
