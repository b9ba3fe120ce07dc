package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	scene2d "github.com/milk9111/scene2d"
	"github.com/milk9111/scene2d/prefabs"
	"github.com/milk9111/scene2d/script"
)

// node is one scene entity: a sprite or a text, optionally driven by a
// tengo script.
type node struct {
	name   string
	sprite *scene2d.Sprite
	text   *scene2d.Text
	rt     *script.Runtime
}

func (n *node) transformable() *scene2d.Transformable {
	if n.sprite != nil {
		return &n.sprite.Transformable
	}
	if n.text != nil {
		return &n.text.Transformable
	}
	return nil
}

type Game struct {
	frames    int
	sceneName string
	debug     bool

	font   *scene2d.Font
	nodes  []*node
	camera *scene2d.Camera
	target string

	watcher *prefabs.Watcher
}

func NewGame(sceneName string, debug, watch bool) (*Game, error) {
	font, err := scene2d.DefaultFont()
	if err != nil {
		return nil, err
	}

	g := &Game{
		sceneName: sceneName,
		debug:     debug,
		font:      font,
		camera:    scene2d.NewCamera(baseWidth, baseHeight, 1),
	}
	if err := g.loadScene(); err != nil {
		return nil, err
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			logrus.WithError(err).Warn("scene watcher disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) loadScene() error {
	spec, err := prefabs.LoadSceneSpec(g.sceneName)
	if err != nil {
		return err
	}

	g.camera.SetWorldBounds(spec.World.Width, spec.World.Height)
	g.target = ""
	if spec.Camera != nil {
		spec.Camera.Apply(g.camera)
		g.target = spec.Camera.Target
	}

	nodes := make([]*node, 0, len(spec.Nodes))
	for _, ns := range spec.Nodes {
		n := &node{name: ns.Name}
		switch {
		case ns.Sprite != nil:
			n.sprite = scene2d.NewSprite(placeholderImage(ns.Sprite.Image))
			ns.Sprite.Apply(n.sprite)
			ns.Transform.Apply(&n.sprite.Transformable)
		case ns.Text != nil:
			n.text = scene2d.NewText("", g.font, 16)
			ns.Text.Apply(n.text)
			ns.Transform.Apply(&n.text.Transformable)
		default:
			logrus.WithField("node", ns.Name).Warn("node has neither sprite nor text, skipping")
			continue
		}

		if ns.Script != "" {
			src, err := prefabs.LoadScript(ns.Script)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"node":   ns.Name,
					"script": ns.Script,
				}).WithError(err).Warn("script load failed")
			} else if rt, err := script.New(ns.Script, src, n.transformable()); err != nil {
				logrus.WithField("script", ns.Script).WithError(err).Warn("script compile failed")
			} else {
				n.rt = rt
			}
		}
		nodes = append(nodes, n)
	}
	g.nodes = nodes

	if t := g.targetNode(); t != nil {
		p := t.transformable().Position()
		g.camera.SnapTo(p.X, p.Y)
	}

	logrus.WithFields(logrus.Fields{
		"scene": spec.Name,
		"nodes": len(nodes),
	}).Info("scene loaded")
	return nil
}

func (g *Game) targetNode() *node {
	if g.target == "" {
		return nil
	}
	for _, n := range g.nodes {
		if n.name == g.target {
			return n
		}
	}
	return nil
}

func (g *Game) Update() error {
	g.frames++
	dt := 1.0 / float64(ebiten.TPS())

	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if ok {
				logrus.WithField("file", name).Info("reloading scene")
				if err := g.loadScene(); err != nil {
					logrus.WithError(err).Error("scene reload failed")
				}
			}
		case err := <-g.watcher.Errors:
			if err != nil {
				logrus.WithError(err).Warn("scene watcher error")
			}
		default:
		}
	}

	for _, n := range g.nodes {
		if n.rt == nil {
			continue
		}
		if err := n.rt.Update(dt); err != nil {
			logrus.WithField("node", n.name).WithError(err).Error("node script failed")
			n.rt = nil
		}
	}

	if t := g.targetNode(); t != nil {
		p := t.transformable().Position()
		g.camera.Update(p.X, p.Y)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	opts := &scene2d.DrawOptions{View: g.camera.View()}
	for _, n := range g.nodes {
		if n.sprite != nil {
			n.sprite.Draw(screen, opts)
		}
		if n.text != nil {
			n.text.Draw(screen, opts)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// placeholderImage builds a flat 32x32 tile. The demo carries no image
// assets; sprite colors come from the scene's tint.
func placeholderImage(key string) *ebiten.Image {
	img := ebiten.NewImage(32, 32)
	img.Fill(color.White)
	logrus.WithField("image", key).Debug("using placeholder image")
	return img
}
