// Package render implements the sprite.Renderer capability on top of the
// SDL2 2D renderer: alpha-composited sub-rectangle blits, solid-color
// texture creation for prototypes, and single-pixel readback.
package render

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/spriterun/internal/engine/sprite"
)

// Texture is a GPU-resident image usable as a blit source.
type Texture struct {
	tex *sdl.Texture
	w   int32
	h   int32
}

// Size implements sprite.Image.
func (t *Texture) Size() (w, h int32) {
	return t.w, t.h
}

// Destroy releases the underlying SDL texture.
func (t *Texture) Destroy() {
	if t.tex != nil {
		_ = t.tex.Destroy()
		t.tex = nil
	}
}

// Renderer wraps an SDL renderer.
type Renderer struct {
	rend *sdl.Renderer
}

// New creates a renderer for win.
func New(win *sdl.Window, vsync bool) (*Renderer, error) {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	rend, err := sdl.CreateRenderer(win, -1, flags)
	if err != nil {
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}
	if err := rend.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		rend.Destroy()
		return nil, fmt.Errorf("set blend mode: %w", err)
	}
	return &Renderer{rend: rend}, nil
}

// Close releases the SDL renderer.
func (r *Renderer) Close() {
	if r.rend != nil {
		_ = r.rend.Destroy()
		r.rend = nil
	}
}

// Clear fills the frame with the given color.
func (r *Renderer) Clear(red, green, blue uint8) error {
	if err := r.rend.SetDrawColor(red, green, blue, 255); err != nil {
		return err
	}
	return r.rend.Clear()
}

// Present flips the frame to the screen.
func (r *Renderer) Present() {
	r.rend.Present()
}

// Blit implements sprite.Renderer. Alpha is applied as a per-blit
// modulation on the source texture.
func (r *Renderer) Blit(img sprite.Image, srcX, srcY, srcW, srcH int32, dstX, dstY, dstW, dstH float32, alpha float32) error {
	tex, ok := img.(*Texture)
	if !ok {
		return fmt.Errorf("blit: image %T is not a render.Texture", img)
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	if err := tex.tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return err
	}
	if err := tex.tex.SetAlphaMod(uint8(alpha * 255)); err != nil {
		return err
	}
	src := sdl.Rect{X: srcX, Y: srcY, W: srcW, H: srcH}
	dst := sdl.Rect{X: int32(dstX), Y: int32(dstY), W: int32(dstW), H: int32(dstH)}
	return r.rend.Copy(tex.tex, &src, &dst)
}

// SolidTexture creates a w by h texture filled with one color. Prototype
// scenes use these instead of loading image assets.
func (r *Renderer) SolidTexture(w, h int32, red, green, blue, a uint8) (*Texture, error) {
	tex, err := r.rend.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, w, h)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}
	prev := r.rend.GetRenderTarget()
	if err := r.rend.SetRenderTarget(tex); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("set render target: %w", err)
	}
	r.rend.SetDrawColor(red, green, blue, a)
	r.rend.Clear()
	if err := r.rend.SetRenderTarget(prev); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("restore render target: %w", err)
	}
	return &Texture{tex: tex, w: w, h: h}, nil
}

// LoadBMP loads a BMP file into a texture.
func (r *Renderer) LoadBMP(path string) (*Texture, error) {
	surf, err := sdl.LoadBMP(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer surf.Free()
	tex, err := r.rend.CreateTextureFromSurface(surf)
	if err != nil {
		return nil, fmt.Errorf("texture from %s: %w", path, err)
	}
	return &Texture{tex: tex, w: surf.W, h: surf.H}, nil
}

// GetColor reads the pixel at (x, y) from the current frame and returns
// it as a six-digit hex string.
func (r *Renderer) GetColor(x, y int32) (string, error) {
	var buf [3]byte
	rect := sdl.Rect{X: x, Y: y, W: 1, H: 1}
	if err := r.rend.ReadPixels(&rect, sdl.PIXELFORMAT_RGB24, unsafe.Pointer(&buf[0]), 3); err != nil {
		return "", fmt.Errorf("read pixel (%d,%d): %w", x, y, err)
	}
	return RGBToHex(int(buf[0]), int(buf[1]), int(buf[2]))
}
