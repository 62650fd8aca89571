// Package config loads and validates shell profiles: the prompt,
// banner, help headers and capacity limits a shell is built with.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed default/config.yaml
var defaultProfileData []byte

// ProfileName is the file name a profile is stored under.
const ProfileName = "config.yaml"

// Profile is one shell profile.
type Profile struct {
	Prompt string `json:"prompt"`
	Banner string `json:"banner"`

	DocHeader   string `json:"doc_header" validate:"required"`
	UndocHeader string `json:"undoc_header" validate:"required"`
	Ruler       string `json:"ruler" validate:"required,len=1"`

	MaxCommandsPerSession int `json:"max_commands_per_session" validate:"gte=1"`
	MaxNestingDepth       int `json:"max_nesting_depth" validate:"gte=1"`

	EnableDefaultExit bool `json:"enable_default_exit"`
}

// Validate the profile for basic semantic errors.
func (p *Profile) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(p)
}

// RulerRune returns the ruler as a rune; zero when unset.
func (p *Profile) RulerRune() rune {
	for _, r := range p.Ruler {
		return r
	}
	return 0
}
