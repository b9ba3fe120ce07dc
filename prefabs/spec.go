// Package prefabs loads scene and node definitions from yaml files,
// embedded or on disk, and applies them onto scene2d objects.
package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	scene2d "github.com/milk9111/scene2d"
)

// LoadSpec loads and unmarshals a yaml spec file by name.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	logrus.WithFields(logrus.Fields{
		"file":  filename,
		"bytes": len(data),
	}).Debug("loaded spec")
	return spec, nil
}

// TransformSpec is the decomposed transform state of a node. A zero
// scale pair means unit scale.
type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
}

// Apply copies the spec state onto t.
func (s TransformSpec) Apply(t *scene2d.Transformable) {
	if t == nil {
		return
	}
	t.SetPosition(s.X, s.Y)
	t.SetRotation(s.Rotation)
	sx, sy := s.ScaleX, s.ScaleY
	if sx == 0 && sy == 0 {
		sx, sy = 1, 1
	}
	t.SetScale(sx, sy)
	t.SetOrigin(s.OriginX, s.OriginY)
}

// SpriteSpec describes a sprite's non-transform state. Image is a key
// the host resolves; the package does not load images itself.
type SpriteSpec struct {
	Image string     `yaml:"image"`
	FlipX bool       `yaml:"flip_x"`
	FlipY bool       `yaml:"flip_y"`
	Color *YAMLColor `yaml:"color"`
}

// Apply copies the spec state onto sp, leaving its image alone.
func (s SpriteSpec) Apply(sp *scene2d.Sprite) {
	if sp == nil {
		return
	}
	sp.SetFlip(s.FlipX, s.FlipY)
	if s.Color != nil {
		sp.SetColor(s.Color.RGBA())
	}
}

// TextSpec describes a text node.
type TextSpec struct {
	Value string     `yaml:"value"`
	Size  float64    `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
}

// Apply copies the spec state onto t, leaving its font alone.
func (s TextSpec) Apply(t *scene2d.Text) {
	if t == nil {
		return
	}
	t.SetValue(s.Value)
	if s.Size > 0 {
		t.SetSize(s.Size)
	}
	if s.Color != nil {
		t.SetColor(s.Color.RGBA())
	}
}

// CameraSpec describes the scene camera.
type CameraSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	Target     string  `yaml:"target"`
}

// Apply copies zoom and smoothing onto c. Target names a node and is
// resolved by the host.
func (s CameraSpec) Apply(c *scene2d.Camera) {
	if c == nil {
		return
	}
	if s.Zoom > 0 {
		c.SetZoom(s.Zoom)
	}
	if s.Smoothness > 0 {
		c.SetSmooth(s.Smoothness)
	}
}

// NodeSpec is a single named entity in a scene.
type NodeSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Sprite    *SpriteSpec   `yaml:"sprite"`
	Text      *TextSpec     `yaml:"text"`
	Script    string        `yaml:"script"`
}

// WorldSpec carries the world pixel dimensions for camera clamping.
type WorldSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SceneSpec is a full scene file.
type SceneSpec struct {
	Name   string      `yaml:"name"`
	World  WorldSpec   `yaml:"world"`
	Camera *CameraSpec `yaml:"camera"`
	Nodes  []NodeSpec  `yaml:"nodes"`
}

// LoadSceneSpec loads a scene file by name.
func LoadSceneSpec(filename string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](filename)
}

// YAMLColor unmarshals a "#rrggbb" or "#rrggbbaa" scalar.
type YAMLColor struct {
	R, G, B, A uint8
}

// RGBA returns the parsed color.
func (c *YAMLColor) RGBA() color.Color {
	if c == nil {
		return color.White
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.R, c.G, c.B, c.A = r, g, b, a
	return nil
}
