// Copyright 2025 go-psimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-psimd/go-psimd/psimd/contrib/workerpool"
)

// ErrUnknownFormat is returned for a file extension with no encoder.
var ErrUnknownFormat = errors.New("imageio: unknown image format")

// Format is an output encoding.
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{PPM, PNG, BMP, TIFF}
}

// formatList joins Formats for error text.
func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return PPM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, ext, formatList())
	}
}

// WritePPM writes c as a binary (P6) PPM, bottom row first, followed by a
// trailing newline.
func WritePPM(w io.Writer, c *Counts) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}
	rgb := make([]byte, 3*c.width)
	r := make([]uint8, c.width)
	g := make([]uint8, c.width)
	b := make([]uint8, c.width)
	for y := range c.height {
		channels(c.Row(c.height-1-y), r, g, b)
		for x := range c.width {
			rgb[3*x+0] = r[x]
			rgb[3*x+1] = g[x]
			rgb[3*x+2] = b[x]
		}
		if _, err := bw.Write(rgb); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

// Encode writes c to w in format f. pool, which may be nil, is used to
// colorize the rows of the image formats.
func Encode(w io.Writer, c *Counts, f Format, pool *workerpool.Pool) error {
	var img image.Image
	if f != PPM {
		img = Colorize(c, pool)
	}
	var err error
	switch f {
	case PPM:
		err = WritePPM(w, c)
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

// WriteFile encodes c into path, picking the format from its extension.
func WriteFile(path string, c *Counts, pool *workerpool.Pool) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("imageio: %w", cerr)
		}
	}()
	return Encode(out, c, f, pool)
}
