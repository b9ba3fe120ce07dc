// Package script runs tengo scripts that animate a transformable each
// tick. A script defines an update function:
//
//	update := func(node, state, dt) {
//		node.rotate(90 * dt)
//	}
//
// node exposes the transformable, state is a persistent map scoped to
// the runtime, dt is the tick duration in seconds.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	scene2d "github.com/milk9111/scene2d"
)

const dispatchScript = `
if __phase == "update" {
	update(__node, __state, __dt)
}
`

// Runtime is a compiled script bound to one transformable. Not safe
// for concurrent use.
type Runtime struct {
	name     string
	compiled *tengo.Compiled
	node     *tengo.ImmutableMap
	state    *tengo.Map
}

// New compiles src and binds it to node. name is only used in errors.
func New(name string, src []byte, node *scene2d.Transformable) (*Runtime, error) {
	if node == nil {
		return nil, fmt.Errorf("script: %s: nil node", name)
	}

	s := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+dispatchScript)...))
	_ = s.Add("__phase", "")
	_ = s.Add("__node", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	_ = s.Add("__dt", 0.0)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	return &Runtime{
		name:     name,
		compiled: compiled,
		node:     nodeObject(node),
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Update runs one tick with dt seconds elapsed.
func (r *Runtime) Update(dt float64) error {
	if r == nil || r.compiled == nil {
		return fmt.Errorf("script: nil runtime")
	}
	if err := r.compiled.Set("__phase", "update"); err != nil {
		return err
	}
	if err := r.compiled.Set("__node", r.node); err != nil {
		return err
	}
	if err := r.compiled.Set("__state", r.state); err != nil {
		return err
	}
	if err := r.compiled.Set("__dt", dt); err != nil {
		return err
	}
	if err := r.compiled.Run(); err != nil {
		return fmt.Errorf("script: run %s: %w", r.name, err)
	}
	return nil
}

// nodeObject wraps a transformable's operations as tengo functions.
func nodeObject(node *scene2d.Transformable) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	bind2 := func(name string, fn func(a, b float64)) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			a, okA := tengo.ToFloat64(args[0])
			b, okB := tengo.ToFloat64(args[1])
			if !okA || !okB {
				return nil, tengo.ErrInvalidArgumentType{Name: name, Expected: "float"}
			}
			fn(a, b)
			return tengo.UndefinedValue, nil
		}}
	}
	bind1 := func(name string, fn func(a float64)) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			a, ok := tengo.ToFloat64(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: name, Expected: "float"}
			}
			fn(a)
			return tengo.UndefinedValue, nil
		}}
	}

	bind2("set_position", node.SetPosition)
	bind2("move", node.Move)
	bind2("set_scale", node.SetScale)
	bind2("scale_by", node.ScaleBy)
	bind2("set_origin", node.SetOrigin)
	bind1("set_rotation", node.SetRotation)
	bind1("rotate", node.Rotate)

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p := node.Position()
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"x": &tengo.Float{Value: p.X},
			"y": &tengo.Float{Value: p.Y},
		}}, nil
	}}
	values["rotation"] = &tengo.UserFunction{Name: "rotation", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: node.Rotation()}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
