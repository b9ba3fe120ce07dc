package scene2d

import (
	"math"

	"github.com/milk9111/scene2d/common"
	"github.com/milk9111/scene2d/geom"
)

// Camera frames the world centered on a given world coordinate and
// supports zoom, smoothed following and world-bounds clamping. Its
// View transform is meant to be passed to Sprite/Text Draw through
// DrawOptions.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and
// initial zoom. A non-positive zoom falls back to 1, matching the
// SetZoom guard.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
	// default position at screen center in world coords
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if c == nil || z <= 0 {
		return
	}
	c.zoom = z
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	if c == nil {
		return 1
	}
	return c.zoom
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if c == nil || w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds sets the world pixel dimensions for clamping camera
// position.
func (c *Camera) SetWorldBounds(w, h int) {
	if c == nil {
		return
	}
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// SetSmooth sets the follow smoothing factor. 0 disables smoothing.
func (c *Camera) SetSmooth(f float64) {
	if c == nil {
		return
	}
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// Update moves the camera toward the target world coordinate. Call
// from the fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Update(targetX, targetY float64) {
	if c == nil {
		return
	}
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	}
	c.settle()
}

// SnapTo immediately sets the camera center to the given world
// coordinates, skipping smoothing. Use after a scene load to avoid the
// camera sweeping across the world.
func (c *Camera) SnapTo(x, y float64) {
	if c == nil {
		return
	}
	c.PosX = x
	c.PosY = y
	c.settle()
}

// settle snaps the position to a 1/zoom grid so source texels align to
// integer screen pixels, then clamps to world bounds if provided.
func (c *Camera) settle() {
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}

	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	halfW := viewW / 2.0
	halfH := viewH / 2.0
	if c.worldW > 0 {
		if c.worldW-halfW < halfW {
			// world smaller than view: center on world
			c.PosX = c.worldW / 2.0
		} else {
			c.PosX = common.Clamp(c.PosX, halfW, c.worldW-halfW)
		}
	}
	if c.worldH > 0 {
		if c.worldH-halfH < halfH {
			c.PosY = c.worldH / 2.0
		} else {
			c.PosY = common.Clamp(c.PosY, halfH, c.worldH-halfH)
		}
	}
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c == nil || c.zoom == 0 {
		return 0, 0
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// View returns the world-to-screen transform: translate to the screen
// center, zoom, translate the camera position to the origin.
func (c *Camera) View() geom.Transform {
	if c == nil {
		return geom.Identity()
	}
	v := geom.Identity()
	v.Translate(float64(c.screenW)/2.0, float64(c.screenH)/2.0).
		Scale(c.zoom, c.zoom).
		Translate(-c.PosX, -c.PosY)
	return v
}

// WorldToScreen maps a world coordinate to screen pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return c.View().Apply(x, y)
}

// ScreenToWorld maps a screen pixel to world coordinates.
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return c.View().Inverse().Apply(x, y)
}
