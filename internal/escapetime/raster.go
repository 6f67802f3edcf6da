package escapetime

import (
	"image"
	"image/color"
	"sync"

	"fractal-explorer/pkg/geometry"
)

// Raster is the shared pixel buffer the renderer's workers write into. A
// single lock guards the whole buffer; workers take it once per completed
// column, which bounds contention while a concurrent reader can still watch
// the fill progress.
type Raster struct {
	mu   sync.Mutex
	img  *image.RGBA
	size geometry.Size
}

// NewRaster creates a raster of the given pixel size.
func NewRaster(size geometry.Size) *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, size.Width, size.Height)),
		size: size,
	}
}

// Size returns the raster's pixel dimensions.
func (r *Raster) Size() geometry.Size {
	return r.size
}

// SetPixel writes one pixel. Out-of-bounds writes are dropped.
func (r *Raster) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= r.size.Width || y < 0 || y >= r.size.Height {
		return
	}
	r.mu.Lock()
	r.img.SetRGBA(x, y, c)
	r.mu.Unlock()
}

// SetColumn writes a full pixel column under one lock acquisition.
func (r *Raster) SetColumn(x int, column []color.RGBA) {
	if x < 0 || x >= r.size.Width {
		return
	}
	r.mu.Lock()
	for y, c := range column {
		if y >= r.size.Height {
			break
		}
		r.img.SetRGBA(x, y, c)
	}
	r.mu.Unlock()
}

// Snapshot returns a copy of the current pixels, safe to hand to a renderer
// while workers keep writing.
func (r *Raster) Snapshot() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := image.NewRGBA(r.img.Rect)
	copy(clone.Pix, r.img.Pix)
	return clone
}
