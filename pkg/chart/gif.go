package chart

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/dtnitsch/palabras/pkg/history"
)

// EncodeGIF renders one frame per date and concatenates them into a
// looping GIF. frameDuration is the display time of each frame.
func EncodeGIF(w io.Writer, t *history.Table, frameDuration time.Duration) error {
	dates := t.Dates()
	if len(dates) == 0 {
		return fmt.Errorf("no dates to animate")
	}

	xmax := float64(t.MaxCount())
	delay := int(frameDuration / (10 * time.Millisecond)) // gif delay unit is 1/100 s

	anim := &gif.GIF{LoopCount: 0}
	for _, date := range dates {
		frame, err := renderFrame(FrameBars(t, date), date, xmax)
		if err != nil {
			return fmt.Errorf("frame %s: %w", date, err)
		}
		anim.Image = append(anim.Image, quantize(frame))
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode GIF: %w", err)
	}
	return nil
}

// WriteGIF is EncodeGIF to a file path.
func WriteGIF(path string, t *history.Table, frameDuration time.Duration) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	if err := EncodeGIF(f, t, frameDuration); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// quantize converts a rendered frame onto the Plan9 palette with
// Floyd-Steinberg dithering, as GIF frames must be paletted.
func quantize(frame image.Image) *image.Paletted {
	bounds := frame.Bounds()
	paletted := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, bounds, frame, bounds.Min)
	return paletted
}
