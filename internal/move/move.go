// Package move defines a single planned point-to-point move and how its profile
// kind and limits are decoded from JSON or YAML.
package move

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Marius-Juston/Robot-Planning/internal/kinematics"
	"github.com/Marius-Juston/Robot-Planning/internal/profile"
)

// validate is shared by every move; validator.Validate caches struct metadata
// and is safe for concurrent use.
var validate = validator.New()

// Limits are the velocity and acceleration magnitudes a move may use.
// Zero values mean "use the plan defaults".
type Limits struct {
	VMax float64 `json:"v_max,omitempty" yaml:"v_max,omitempty" validate:"omitempty,gt=0"`
	AMax float64 `json:"a_max,omitempty" yaml:"a_max,omitempty" validate:"omitempty,gt=0"`
}

// Or fills unset limits from fallback.
func (l Limits) Or(fallback Limits) Limits {
	if l.VMax == 0 {
		l.VMax = fallback.VMax
	}
	if l.AMax == 0 {
		l.AMax = fallback.AMax
	}
	return l
}

// ProfileSpec selects the profile kind and its limits.
type ProfileSpec struct {
	Kind   profile.Kind `json:"kind" yaml:"kind"`
	Limits `yaml:",inline"`
}

// Move is one point-to-point move. Distance is relative to where the previous
// move ended.
type Move struct {
	ID       string      `json:"id" yaml:"id" validate:"required"`
	Distance float64     `json:"distance" yaml:"distance"`
	VInitial float64     `json:"v_initial" yaml:"v_initial"`
	VFinal   float64     `json:"v_final" yaml:"v_final"`
	Profile  ProfileSpec `json:"profile" yaml:"profile"` // set by UnmarshalJSON / UnmarshalYAML
}

// profileDisc is the minimum structure needed to read the kind discriminator.
type profileDisc struct {
	Kind string `json:"kind" yaml:"kind"`
}

// moveJSON is the raw JSON shape of a Move, before the profile kind is resolved.
type moveJSON struct {
	ID       string          `json:"id"`
	Distance float64         `json:"distance"`
	VInitial float64         `json:"v_initial"`
	VFinal   float64         `json:"v_final"`
	Profile  json.RawMessage `json:"profile"`
}

// moveYAML is the YAML counterpart of moveJSON.
type moveYAML struct {
	ID       string    `yaml:"id"`
	Distance float64   `yaml:"distance"`
	VInitial float64   `yaml:"v_initial"`
	VFinal   float64   `yaml:"v_final"`
	Profile  yaml.Node `yaml:"profile"`
}

// UnmarshalJSON implements json.Unmarshaler for Move.
// The optional "profile" object carries a "kind" discriminator; a missing
// profile or kind means trapezoidal with the plan's default limits.
//
// Supported kinds:
//   - "trapezoidal": bang-coast-bang under v_max / a_max.
//   - "s_curve": accepted here, rejected when the move is built.
func (m *Move) UnmarshalJSON(data []byte) error {
	var aux moveJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.ID, m.Distance, m.VInitial, m.VFinal = aux.ID, aux.Distance, aux.VInitial, aux.VFinal
	m.Profile = ProfileSpec{Kind: profile.KindTrapezoidal}

	if len(aux.Profile) == 0 || string(aux.Profile) == "null" {
		return nil
	}

	var disc profileDisc
	if err := json.Unmarshal(aux.Profile, &disc); err != nil {
		return fmt.Errorf("move %q: reading profile kind: %w", m.ID, err)
	}
	kind, err := resolveKind(m.ID, disc.Kind)
	if err != nil {
		return err
	}

	var limits Limits
	if err := json.Unmarshal(aux.Profile, &limits); err != nil {
		return fmt.Errorf("move %q: parsing %s limits: %w", m.ID, kind, err)
	}
	m.Profile = ProfileSpec{Kind: kind, Limits: limits}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Move with the same rules as
// UnmarshalJSON.
func (m *Move) UnmarshalYAML(value *yaml.Node) error {
	var aux moveYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}
	m.ID, m.Distance, m.VInitial, m.VFinal = aux.ID, aux.Distance, aux.VInitial, aux.VFinal
	m.Profile = ProfileSpec{Kind: profile.KindTrapezoidal}

	if aux.Profile.Kind == 0 || aux.Profile.Tag == "!!null" {
		return nil
	}

	var disc profileDisc
	if err := aux.Profile.Decode(&disc); err != nil {
		return fmt.Errorf("move %q: reading profile kind: %w", m.ID, err)
	}
	kind, err := resolveKind(m.ID, disc.Kind)
	if err != nil {
		return err
	}

	var limits Limits
	if err := aux.Profile.Decode(&limits); err != nil {
		return fmt.Errorf("move %q: parsing %s limits: %w", m.ID, kind, err)
	}
	m.Profile = ProfileSpec{Kind: kind, Limits: limits}
	return nil
}

func resolveKind(id, name string) (profile.Kind, error) {
	if name == "" {
		return profile.KindTrapezoidal, nil
	}
	kind, err := profile.ParseKind(name)
	if err != nil {
		return "", fmt.Errorf("move %q: %w", id, err)
	}
	return kind, nil
}

// Validate checks the move's struct constraints.
func (m Move) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("move %q: %w: %w", m.ID, kinematics.ErrInvalidParameter, err)
	}
	return nil
}

// Build validates the move and builds its profile starting at position 0.
// Limits left unset on the move are taken from defaults.
func (m Move) Build(defaults Limits) (profile.Profile, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	limits := m.Profile.Limits.Or(defaults)
	kind := m.Profile.Kind
	if kind == "" {
		kind = profile.KindTrapezoidal
	}
	p, err := profile.New(kind, 0, m.Distance, m.VInitial, m.VFinal, limits.VMax, limits.AMax)
	if err != nil {
		return nil, fmt.Errorf("move %q: %w", m.ID, err)
	}
	return p, nil
}
