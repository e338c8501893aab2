package move

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Marius-Juston/Robot-Planning/internal/kinematics"
	"github.com/Marius-Juston/Robot-Planning/internal/profile"
)

var defaults = Limits{VMax: 2, AMax: 1}

func TestUnmarshalJSON(t *testing.T) {
	t.Run("explicit kind and limits", func(t *testing.T) {
		var m Move
		err := json.Unmarshal([]byte(`{"id":"out","distance":10,"v_final":0.5,
			"profile":{"kind":"trapezoidal","v_max":3,"a_max":1.5}}`), &m)
		require.NoError(t, err)
		assert.Equal(t, Move{
			ID:       "out",
			Distance: 10,
			VFinal:   0.5,
			Profile:  ProfileSpec{Kind: profile.KindTrapezoidal, Limits: Limits{VMax: 3, AMax: 1.5}},
		}, m)
	})

	t.Run("missing profile defaults to trapezoidal", func(t *testing.T) {
		var m Move
		require.NoError(t, json.Unmarshal([]byte(`{"id":"a","distance":1}`), &m))
		assert.Equal(t, profile.KindTrapezoidal, m.Profile.Kind)
		assert.Zero(t, m.Profile.Limits)
	})

	t.Run("limits without kind", func(t *testing.T) {
		var m Move
		require.NoError(t, json.Unmarshal([]byte(`{"id":"a","distance":1,"profile":{"a_max":4}}`), &m))
		assert.Equal(t, ProfileSpec{Kind: profile.KindTrapezoidal, Limits: Limits{AMax: 4}}, m.Profile)
	})

	t.Run("unknown kind", func(t *testing.T) {
		var m Move
		err := json.Unmarshal([]byte(`{"id":"a","profile":{"kind":"bezier"}}`), &m)
		assert.ErrorIs(t, err, profile.ErrUnknownKind)
	})

	t.Run("malformed limits", func(t *testing.T) {
		var m Move
		err := json.Unmarshal([]byte(`{"id":"a","profile":{"kind":"trapezoidal","v_max":"fast"}}`), &m)
		assert.Error(t, err)
	})
}

func TestUnmarshalYAML(t *testing.T) {
	var moves []Move
	err := yaml.Unmarshal([]byte(`
- id: out
  distance: 0.2
  profile:
    kind: trapezoidal
    v_max: 3
    a_max: 1
- id: back
  distance: -0.2
- id: smooth
  distance: 1
  profile:
    kind: s_curve
`), &moves)
	require.NoError(t, err)
	require.Len(t, moves, 3)

	assert.Equal(t, ProfileSpec{Kind: profile.KindTrapezoidal, Limits: Limits{VMax: 3, AMax: 1}}, moves[0].Profile)
	assert.Equal(t, -0.2, moves[1].Distance)
	assert.Equal(t, ProfileSpec{Kind: profile.KindTrapezoidal}, moves[1].Profile)
	assert.Equal(t, profile.KindSCurve, moves[2].Profile.Kind)

	var bad Move
	err = yaml.Unmarshal([]byte("id: x\nprofile:\n  kind: spline\n"), &bad)
	assert.ErrorIs(t, err, profile.ErrUnknownKind)
}

func TestLimitsOr(t *testing.T) {
	assert.Equal(t, Limits{VMax: 5, AMax: 1}, Limits{VMax: 5}.Or(defaults))
	assert.Equal(t, defaults, Limits{}.Or(defaults))
	assert.Equal(t, Limits{VMax: 5, AMax: 7}, Limits{VMax: 5, AMax: 7}.Or(defaults))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Move{ID: "a", Distance: 1}.Validate())

	err := Move{Distance: 1}.Validate()
	assert.ErrorIs(t, err, kinematics.ErrInvalidParameter)

	err = Move{ID: "a", Profile: ProfileSpec{Limits: Limits{VMax: -1}}}.Validate()
	assert.ErrorIs(t, err, kinematics.ErrInvalidParameter)
}

func TestBuild(t *testing.T) {
	m := Move{ID: "a", Distance: 10, Profile: ProfileSpec{Kind: profile.KindTrapezoidal}}
	p, err := m.Build(defaults)
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.Duration())
	assert.Equal(t, 0.0, p.InitialPosition())
	assert.Equal(t, 10.0, p.FinalPosition())

	m.Profile.Limits = Limits{VMax: 10}
	p, err = m.Build(defaults)
	require.NoError(t, err)
	trap, ok := p.(*profile.Trapezoidal)
	require.True(t, ok)
	assert.Equal(t, profile.ShapeTriangular, trap.Shape())

	_, err = Move{ID: "a", Distance: 1}.Build(Limits{})
	assert.ErrorIs(t, err, kinematics.ErrInvalidParameter)

	_, err = Move{ID: "a", Distance: 1, Profile: ProfileSpec{Kind: profile.KindSCurve}}.Build(defaults)
	assert.ErrorIs(t, err, profile.ErrNotImplemented)
}
