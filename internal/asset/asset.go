package asset

import (
	"embed"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/pkg/errors"
)

const (
	PlayerShip  = "sprites/player_ship_1.png"
	UFOGreen    = "sprites/ufo_green.png"
	LaserGreenA = "sprites/laser_green_1.png"
	LaserGreenB = "sprites/laser_green_2.png"
	LaserRedA   = "sprites/laser_red_1.png"
	LaserRedB   = "sprites/laser_red_2.png"
	Backdrop    = "sprites/backdrop.png"
)

//go:embed sprites/*.png
var sprites embed.FS

// Paths lists every embedded image
func Paths() ([]string, error) {
	paths, err := fs.Glob(sprites, "sprites/*.png")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sprites")
	}
	return paths, nil
}

// Decode decodes the embedded image at path
func Decode(path string) (image.Image, error) {
	f, err := sprites.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return img, nil
}
