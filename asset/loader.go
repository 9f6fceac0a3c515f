package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Asset file names inside a sprite directory
const (
	FileBackground = "background-day.png"
	FileMessage    = "message.png"
	FilePipe       = "pipe-green.png"
	FileGround     = "base.png"
)

var birdFrameFiles = [3]string{
	"bluebird-upflap.png",
	"bluebird-midflap.png",
	"bluebird-downflap.png",
}

var birdFrameNames = [3]string{"bird-upflap", "bird-midflap", "bird-downflap"}

// Load reads the sprite set from PNG files in dir, scaling each to the layout
// Any missing or undecodable file is an error; there is no partial fallback
func Load(dir string, l Layout) (*Set, error) {
	load := func(file, name string, w, h int) (*Sprite, error) {
		img, err := decodeFile(filepath.Join(dir, file))
		if err != nil {
			return nil, err
		}
		return NewSprite(name, scale(img, w, h)), nil
	}

	set := &Set{}
	var err error
	if set.Background, err = load(FileBackground, "background", l.ScreenWidth, l.ScreenHeight); err != nil {
		return nil, err
	}
	if set.Message, err = load(FileMessage, "message", l.MessageWidth, l.MessageHeight); err != nil {
		return nil, err
	}
	if set.Pipe, err = load(FilePipe, "pipe", l.PipeWidth, l.PipeHeight); err != nil {
		return nil, err
	}
	set.PipeInverted = set.Pipe.FlipVertical("pipe-inverted")
	if set.Ground, err = load(FileGround, "ground", l.GroundWidth, l.GroundHeight); err != nil {
		return nil, err
	}
	for i, file := range birdFrameFiles {
		if set.Bird[i], err = load(file, birdFrameNames[i], l.BirdWidth, l.BirdHeight); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return img, nil
}

// scale resizes with nearest-neighbor to keep hard alpha edges for masks
func scale(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
