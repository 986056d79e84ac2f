package og

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"
)

// FrameRenderer draws the background, accent border and accent bar of a
// preview image. It does not typeset the title; a text-capable Renderer
// replaces it when one is available.
type FrameRenderer struct{}

func (FrameRenderer) Render(ctx context.Context, _ string, style Style) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bg, err := parseHex(Background)
	if err != nil {
		return nil, err
	}
	accent, err := parseHex(style.Accent)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	const pad, border = 80, 2
	label := image.Rect(pad, pad, pad+24*len(style.Label)+32, pad+48)
	fill := image.NewUniform(accent)
	for _, edge := range []image.Rectangle{
		image.Rect(label.Min.X, label.Min.Y, label.Max.X, label.Min.Y+border),
		image.Rect(label.Min.X, label.Max.Y-border, label.Max.X, label.Max.Y),
		image.Rect(label.Min.X, label.Min.Y, label.Min.X+border, label.Max.Y),
		image.Rect(label.Max.X-border, label.Min.Y, label.Max.X, label.Max.Y),
		image.Rect(Width-pad-48, Height-pad-4, Width-pad, Height-pad),
	} {
		draw.Draw(img, edge, fill, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func parseHex(s string) (color.RGBA, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
