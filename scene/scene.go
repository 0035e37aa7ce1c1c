// seehuhn.de/go/preview - a headless line preview rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scene reads and writes scene files for the line preview
// rasterizer.
//
// A scene file describes the canvas size and an ordered list of groups:
//
//	width: 64
//	height: 48
//	groups:
//	  - name: board
//	    color: [255, 0, 0, 255]
//	    segments:
//	      - [0, 0, 63, 47]
//
// YAML and JSON are supported.  JSON input is checked against the schema
// in [Schema] before it is decoded.
package scene

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/preview"
)

// Schema is the JSON schema for scene files.
//
//go:embed schema.json
var Schema []byte

var errEmpty = errors.New("empty scene file")

// Format identifies the encoding of a scene file.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format implied by the extension of a file name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%s: unknown scene file extension", name)
	}
}

// File is the contents of a scene file.
type File struct {
	Name   string  `yaml:"name,omitempty" json:"name,omitempty"`
	Width  int     `yaml:"width" json:"width"`
	Height int     `yaml:"height" json:"height"`
	Groups []Group `yaml:"groups,omitempty" json:"groups,omitempty"`
}

// Group is one group of segments in a scene file.
type Group struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Color []int  `yaml:"color" json:"color"` // r, g, b, a

	// Visible defaults to true if omitted.
	Visible *bool `yaml:"visible,omitempty" json:"visible,omitempty"`

	Segments [][]int `yaml:"segments,omitempty" json:"segments,omitempty"` // x0, y0, x1, y1
}

// Load reads a scene file.  The format is chosen by the file extension.
func Load(name string) (*File, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Decode parses a scene from data.
func Decode(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errEmpty
			}
			return nil, err
		}
	case JSON:
		if err := Validate(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported scene format %s", format)
	}
	return f, nil
}

// Validate checks a JSON scene document against [Schema].
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(Schema),
		gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	var errs []error
	for _, e := range result.Errors() {
		errs = append(errs, errors.New(e.String()))
	}
	return errors.Join(errs...)
}

// Encode writes the scene in the given format.
func (f *File) Encode(format Format) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(f)
	case JSON:
		return json.MarshalIndent(f, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported scene format %s", format)
	}
}

// Groups converts the scene groups for use with [preview.Rasterize].
func (f *File) Groups() ([]preview.Group, error) {
	res := make([]preview.Group, len(f.Groups))
	for i, g := range f.Groups {
		if len(g.Color) != 4 {
			return nil, fmt.Errorf("group %d: color needs 4 channels, got %d", i, len(g.Color))
		}
		segs := make([]preview.Segment, len(g.Segments))
		for j, s := range g.Segments {
			if len(s) != 4 {
				return nil, fmt.Errorf("group %d, segment %d: need 4 coordinates, got %d", i, j, len(s))
			}
			segs[j] = preview.Segment{X0: s[0], Y0: s[1], X1: s[2], Y1: s[3]}
		}
		res[i] = preview.Group{
			Name:     g.Name,
			Segments: segs,
			Color:    preview.Color{R: g.Color[0], G: g.Color[1], B: g.Color[2], A: g.Color[3]},
			Visible:  g.Visible == nil || *g.Visible,
		}
	}
	return res, nil
}

// FromGroups builds a scene from rasterizer input.
func FromGroups(name string, width, height int, groups []preview.Group) *File {
	f := &File{
		Name:   name,
		Width:  width,
		Height: height,
		Groups: make([]Group, len(groups)),
	}
	for i, g := range groups {
		sg := Group{
			Name:     g.Name,
			Color:    []int{g.Color.R, g.Color.G, g.Color.B, g.Color.A},
			Segments: make([][]int, len(g.Segments)),
		}
		if !g.Visible {
			visible := false
			sg.Visible = &visible
		}
		for j, s := range g.Segments {
			sg.Segments[j] = []int{s.X0, s.Y0, s.X1, s.Y1}
		}
		f.Groups[i] = sg
	}
	return f
}
