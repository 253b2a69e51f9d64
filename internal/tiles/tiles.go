// Package tiles reorders the tiles of a page image using a permutation
// drawn from a java.util.Random seed.
package tiles

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/Nebu1eto/javarandom"
)

// NOTE: the grid is fixed at 4x4 and tile edges are multiples of 8
const (
	Divisions = 4
	GridSize  = Divisions * Divisions
	align     = 8
)

// Permutation returns 0..size-1 shuffled the way
// Collections.shuffle(list, new Random(seed)) does.
func Permutation(seed int64, size int) []int {
	perm := make([]int, size)
	for idx := range perm {
		perm[idx] = idx
	}
	javarandom.NewSeed(seed).Shuffle(size, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Descramble moves source tile perm[i] to grid position i.
func Descramble(scrambledImg image.Image, seed int64) (image.Image, error) {
	return rearrange(scrambledImg, seed, false)
}

// Scramble is the inverse of Descramble: tile i moves to position perm[i].
func Scramble(img image.Image, seed int64) (image.Image, error) {
	return rearrange(img, seed, true)
}

func rearrange(src image.Image, seed int64, inverse bool) (image.Image, error) {
	bounds := src.Bounds()
	tileWidth := (bounds.Dx() / align / Divisions) * align
	tileHeight := (bounds.Dy() / align / Divisions) * align

	if tileWidth == 0 || tileHeight == 0 {
		return nil, fmt.Errorf("err: image or tile size is invalid (w:%d, h:%d)", tileWidth, tileHeight)
	}

	// untiled margins are copied through unchanged
	destImg := image.NewRGBA(bounds)
	draw.Draw(destImg, bounds, src, bounds.Min, draw.Src)

	perm := Permutation(seed, GridSize)
	// reconstruct tile position
	for i := 0; i < GridSize; i++ {
		destIndex, sourceIndex := i, perm[i]
		if inverse {
			destIndex, sourceIndex = sourceIndex, destIndex
		}
		moveTile(destImg, src, destIndex, sourceIndex, tileWidth, tileHeight)
	}

	return destImg, nil
}

func moveTile(dst draw.Image, src image.Image, destIndex, sourceIndex, tileWidth, tileHeight int) {
	origin := src.Bounds().Min
	sourcePoint := image.Point{
		X: origin.X + (sourceIndex%Divisions)*tileWidth,
		Y: origin.Y + (sourceIndex/Divisions)*tileHeight,
	}

	destX := origin.X + (destIndex%Divisions)*tileWidth
	destY := origin.Y + (destIndex/Divisions)*tileHeight
	destRect := image.Rect(destX, destY, destX+tileWidth, destY+tileHeight)

	draw.Draw(dst, destRect, src, sourcePoint, draw.Src)
}
