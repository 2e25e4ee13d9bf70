// Package patch implements the per-frame watermark patch.
//
// The watermark rectangle is covered in two parts. The upper part
// (MirrorHeight rows) receives a vertically mirrored copy of the image
// content MirrorOffset pixels above the rectangle, substituting real
// nearby scenery for the logo. The lower part (the remaining rows) is
// blanked with a uniform color sampled just outside the rectangle so it
// blends with the surrounding info bar.
package patch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Geometry describes where the watermark sits and where replacement
// pixels come from. X is measured from the left edge of the frame and Y
// from the bottom edge, matching how trail cameras stamp their overlay.
type Geometry struct {
	// Width and Height are the watermark rectangle dimensions.
	Width  int
	Height int

	// X and Y locate the rectangle's bottom-left corner, Y measured
	// up from the bottom of the frame.
	X int
	Y int

	// MirrorHeight is the height of the upper part of the patch that is
	// covered with mirrored content.
	MirrorHeight int

	// MirrorOffset is how many pixels above the rectangle's top edge the
	// mirror source region begins.
	MirrorOffset int
}

// Default returns the geometry of the Bushnell trail camera overlay:
// a 110x110 logo square in the bottom-left corner, with a 56 pixel
// info bar along the bottom of the frame.
func Default() Geometry {
	return Geometry{
		Width:        110,
		Height:       110,
		X:            0,
		Y:            0,
		MirrorHeight: 54,
		MirrorOffset: 56,
	}
}

// Validate checks the invariants that do not depend on frame dimensions.
// Frame-dependent overflow is clamped per frame, never rejected.
func (g Geometry) Validate() error {
	if g.Width < 0 || g.Height < 0 || g.X < 0 || g.Y < 0 ||
		g.MirrorHeight < 0 || g.MirrorOffset < 0 {
		return fmt.Errorf("geometry values must be non-negative: %+v", g)
	}
	if g.MirrorHeight > g.Height {
		return fmt.Errorf("mirror height %d exceeds patch height %d", g.MirrorHeight, g.Height)
	}
	return nil
}

// Regions resolves the geometry against a frame's bounds and returns the
// watermark rectangle and the mirror source rectangle in top-origin image
// coordinates, both clamped to the frame. Either may be empty.
func (g Geometry) Regions(bounds image.Rectangle) (patchRect, mirrorRect image.Rectangle) {
	w, h := bounds.Dx(), bounds.Dy()
	frame := image.Rect(0, 0, w, h)

	patchRect = image.Rect(g.X, h-(g.Y+g.Height), g.X+g.Width, h-g.Y).Intersect(frame)
	if patchRect.Empty() {
		return patchRect, image.Rectangle{}
	}

	mh := g.MirrorHeight
	if mh > patchRect.Dy() {
		mh = patchRect.Dy()
	}
	srcTop := patchRect.Min.Y - g.MirrorOffset
	mirrorRect = image.Rect(patchRect.Min.X, srcTop, patchRect.Max.X, srcTop+mh).Intersect(frame)
	return patchRect, mirrorRect
}

// Apply returns a new frame with the watermark rectangle replaced.
// Pixels outside the rectangle are byte-identical to the input. Geometry
// that falls outside the frame is clamped to the valid overlap; Apply
// never fails on out-of-range values.
func Apply(src image.Image, g Geometry) *image.NRGBA {
	out := imaging.Clone(src)
	patchRect, mirrorRect := g.Regions(out.Bounds())
	if patchRect.Empty() {
		return out
	}

	mh := g.MirrorHeight
	if mh > patchRect.Dy() {
		mh = patchRect.Dy()
	}

	// Read everything from the pristine clone before writing anything,
	// so overlapping source and destination regions stay well-defined.
	fill := sampleFill(out, patchRect)
	var block *image.NRGBA
	if !mirrorRect.Empty() {
		block = imaging.FlipV(imaging.Crop(out, mirrorRect))
	}

	lower := image.Rect(patchRect.Min.X, patchRect.Min.Y+mh, patchRect.Max.X, patchRect.Max.Y)
	if !lower.Empty() {
		draw.Draw(out, lower, image.NewUniform(fill), image.Point{}, draw.Src)
	}

	if block != nil {
		// Anchor the flipped block at the top of the upper region. When
		// the source was clamped at the top edge the missing rows simply
		// leave the tail of the upper region unpatched.
		dst := image.Rect(
			patchRect.Min.X,
			patchRect.Min.Y,
			patchRect.Min.X+block.Bounds().Dx(),
			patchRect.Min.Y+block.Bounds().Dy(),
		)
		draw.Draw(out, dst, block, image.Point{}, draw.Src)
	}

	return out
}

// sampleFill picks the uniform fill color for the lower region: the pixel
// immediately to the right of the rectangle's bottom-right corner, clamped
// inside the frame. The point sits in the info bar next to the watermark,
// so the blanked area blends with its surroundings.
func sampleFill(img *image.NRGBA, patchRect image.Rectangle) color.NRGBA {
	b := img.Bounds()
	x := patchRect.Max.X
	if x > b.Max.X-1 {
		x = b.Max.X - 1
	}
	y := patchRect.Max.Y - 1
	if y > b.Max.Y-1 {
		y = b.Max.Y - 1
	}
	if y < b.Min.Y {
		y = b.Min.Y
	}
	return img.NRGBAAt(x, y)
}
