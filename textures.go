// Copyright (C) 2025, VigilantDoomer
//
// This file is part of VigilantGen program.
//
// VigilantGen is free software: you can redistribute it
// and/or modify it under the terms of GNU General Public License
// as published by the Free Software Foundation, either version 2 of
// the License, or (at your option) any later version.
//
// VigilantGen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VigilantGen.  If not, see <https://www.gnu.org/licenses/>.
package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Largest texture dimension engines handle comfortably. Bigger imports are
// scaled down to fit
const MAX_TEXTURE_DIM = 1024

type ImportedTexture struct {
	Name   string
	Data   []byte
	Width  int
	Height int
	Sized  bool // whether Width and Height are known
}

// TextureRegistry holds images to be written between TX_START and TX_END
type TextureRegistry struct {
	textures []ImportedTexture
	byName   map[string]int
}

func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{
		byName: make(map[string]int),
	}
}

// Import reads image at path as texture name. Images that are not PNG, or
// are too large, are converted into PNG of acceptable size. When format of
// the image is not recognized, its bytes are stored as is and the texture
// is not auto-scaled
func (r *TextureRegistry) Import(name, path string) error {
	name = strings.ToUpper(name)
	if len(name) == 0 || len(name) > 8 {
		return fmt.Errorf("texture name '%s' must be 1 to 8 characters long", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("importing texture %s: %w", name, err)
	}
	return r.ImportBytes(name, data)
}

func (r *TextureRegistry) ImportBytes(name string, data []byte) error {
	name = strings.ToUpper(name)
	tex := ImportedTexture{Name: name, Data: data}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		Log.Error("Texture %s: couldn't recognize image format (%s), it is stored as is and won't be auto-scaled.\n",
			name, err.Error())
	} else {
		tex.Width, tex.Height, tex.Sized = cfg.Width, cfg.Height, true
		if format != "png" || cfg.Width > MAX_TEXTURE_DIM || cfg.Height > MAX_TEXTURE_DIM {
			converted, w, h, err := convertToPNG(data)
			if err != nil {
				return fmt.Errorf("converting texture %s from %s: %w", name, format, err)
			}
			Log.Verbose(1, "Texture %s converted from %s %dx%d to png %dx%d\n",
				name, format, cfg.Width, cfg.Height, w, h)
			tex.Data, tex.Width, tex.Height = converted, w, h
		}
	}
	if idx, ok := r.byName[name]; ok {
		Log.Printf("Texture %s imported twice, the latter replaces the former.\n", name)
		r.textures[idx] = tex
		return nil
	}
	r.byName[name] = len(r.textures)
	r.textures = append(r.textures, tex)
	return nil
}

func convertToPNG(data []byte) ([]byte, int, int, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, err
	}
	bounds := img.Bounds()
	if bounds.Dx() > MAX_TEXTURE_DIM || bounds.Dy() > MAX_TEXTURE_DIM {
		img = imaging.Fit(img, MAX_TEXTURE_DIM, MAX_TEXTURE_DIM, imaging.Lanczos)
		bounds = img.Bounds()
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, 0, 0, err
	}
	return buf.Bytes(), bounds.Dx(), bounds.Dy(), nil
}

// Size of imported texture, ok is false if it was not imported or its
// dimensions are unknown
func (r *TextureRegistry) Size(name string) (int, int, bool) {
	idx, ok := r.byName[strings.ToUpper(name)]
	if !ok || !r.textures[idx].Sized {
		return 0, 0, false
	}
	return r.textures[idx].Width, r.textures[idx].Height, true
}

func (r *TextureRegistry) Len() int {
	return len(r.textures)
}

// Lumps of the texture namespace, nothing if no texture was imported
func (r *TextureRegistry) Lumps() []WadLump {
	if len(r.textures) == 0 {
		return nil
	}
	lumps := make([]WadLump, 0, len(r.textures)+2)
	lumps = append(lumps, WadLump{Name: TX_START})
	for _, tex := range r.textures {
		lumps = append(lumps, WadLump{Name: tex.Name, Data: tex.Data})
	}
	return append(lumps, WadLump{Name: TX_END})
}
