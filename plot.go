package autoenc

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"
)

const plotSpacing int = 1

// PlotHiddenNeurons renders the hidden-layer kernels of the Unit as a grid of
// grayscale tiles (one tile per hidden neuron, input weights reshaped to a
// near-square tile, each tile normalized independently) and writes the result
// to "neurons.png" in the given directory.
func (u *Unit) PlotHiddenNeurons(dirPath string) error {
	if err := u.build(); err != nil {
		return err
	} else if dirPath == "" {
		return errors.Errorf("Can't plot hidden neurons of %q, directory path is empty", u.name)
	}

	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return errors.Wrapf(err, "Couldn't make plot directory %q\n", dirPath)
	}

	img := kernelGrid(u.layers[0].Weights)

	f, err := os.Create(dirPath + "/neurons.png")
	if err != nil {
		return errors.Wrapf(err, "Couldn't create 'neurons.png' in %q\n", dirPath)
	}
	defer f.Close()

	if err = png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "Couldn't encode plot to PNG\n")
	}

	return nil
}

// kernelGrid draws one grayscale tile per weight row into a near-square grid.
func kernelGrid(weights [][]float64) *image.Gray {
	n := len(weights)
	in := len(weights[0])

	tileW := int(math.Ceil(math.Sqrt(float64(in))))
	tileH := (in + tileW - 1) / tileW

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	w := cols*(tileW+plotSpacing) + plotSpacing
	h := rows*(tileH+plotSpacing) + plotSpacing
	img := image.NewGray(image.Rect(0, 0, w, h))

	for v, ws := range weights {
		r, c := v/cols, v%cols
		x0 := plotSpacing + c*(tileW+plotSpacing)
		y0 := plotSpacing + r*(tileH+plotSpacing)

		lo, hi := ws[0], ws[0]
		for _, wt := range ws {
			if wt < lo {
				lo = wt
			}
			if wt > hi {
				hi = wt
			}
		}

		scale := 0.0
		if hi > lo {
			scale = 255 / (hi - lo)
		}

		for i, wt := range ws {
			y := uint8(math.Round((wt - lo) * scale))
			img.SetGray(x0+i%tileW, y0+i/tileW, color.Gray{Y: y})
		}
	}

	return img
}
