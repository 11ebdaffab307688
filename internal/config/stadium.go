package config

import (
    "bytes"
    "errors"
    "fmt"
    "io"
    "os"

    "gopkg.in/yaml.v3"

    "github.com/pitchside/seatmap/internal/render"
    "github.com/pitchside/seatmap/internal/stadium"
    "github.com/pitchside/seatmap/internal/viewport"
)

// ZoomRange is the slider domain.
type ZoomRange struct {
    Min  float64 `yaml:"min"`
    Max  float64 `yaml:"max"`
    Step float64 `yaml:"step"`
}

// Canvas is the canonical drawing size.
type Canvas struct {
    Width  float64 `yaml:"width"`
    Height float64 `yaml:"height"`
}

// Stadium is the layout file. Fields left out keep the default stadium's
// values.
//
//  seats: 2500
//  sections: 4
//  rows_per_section: 25
//  section_colors: ["#ff0000", "#0000ff", "#00ff00", "#ffff00"]
//  pitch: {left: 250, top: 150, right: 550, bottom: 350}
//  zoom: {min: 1, max: 4, step: 0.1}
type Stadium struct {
    Seats          int           `yaml:"seats"`
    Sections       int           `yaml:"sections"`
    RowsPerSection int           `yaml:"rows_per_section"`
    Center         stadium.Point `yaml:"center"`
    HalfWidth      float64       `yaml:"half_width"`
    HalfHeight     float64       `yaml:"half_height"`
    SectionColors  []string      `yaml:"section_colors"`
    Pitch          stadium.Rect  `yaml:"pitch"`
    Zoom           ZoomRange     `yaml:"zoom"`
    Canvas         Canvas        `yaml:"canvas"`
}

// DefaultStadium is the 2500-seat football stadium.
func DefaultStadium() Stadium {
    d := stadium.DefaultConfig()
    return Stadium{
        Seats:          d.TotalSeats,
        Sections:       d.SectionCount,
        RowsPerSection: d.RowsPerSection,
        Center:         d.Center,
        HalfWidth:      d.HalfWidth,
        HalfHeight:     d.HalfHeight,
        SectionColors:  append([]string(nil), render.DefaultSectionColors...),
        Pitch:          stadium.DefaultPitch,
        Zoom:           ZoomRange{Min: viewport.DefaultMinZoom, Max: viewport.DefaultMaxZoom, Step: viewport.DefaultZoomStep},
        Canvas:         Canvas{Width: stadium.CanvasWidth, Height: stadium.CanvasHeight},
    }
}

// LoadStadium reads the layout file at path. An empty path returns the
// default stadium.
func LoadStadium(path string) (Stadium, error) {
    if path == "" {
        return DefaultStadium(), nil
    }
    b, err := os.ReadFile(path)
    if err != nil {
        return Stadium{}, fmt.Errorf("read stadium config: %w", err)
    }
    s, err := ParseStadium(b)
    if err != nil {
        return Stadium{}, fmt.Errorf("%s: %w", path, err)
    }
    return s, nil
}

// ParseStadium decodes YAML over the defaults. Unknown keys are rejected so
// a typo does not silently fall back to a default.
func ParseStadium(b []byte) (Stadium, error) {
    s := DefaultStadium()
    dec := yaml.NewDecoder(bytes.NewReader(b))
    dec.KnownFields(true)
    if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
        return Stadium{}, fmt.Errorf("parse stadium config: %w", err)
    }
    if err := s.Validate(); err != nil {
        return Stadium{}, err
    }
    return s, nil
}

// Validate checks the bowl and the zoom range.
func (s Stadium) Validate() error {
    if err := s.Geometry().Validate(); err != nil {
        return err
    }
    if s.Zoom.Min <= 0 || s.Zoom.Max < s.Zoom.Min {
        return fmt.Errorf("%w: zoom range [%g, %g]", stadium.ErrInvalidConfig, s.Zoom.Min, s.Zoom.Max)
    }
    if s.Pitch.Width() < 0 || s.Pitch.Height() < 0 {
        return fmt.Errorf("%w: pitch has negative extent", stadium.ErrInvalidConfig)
    }
    return nil
}

// Geometry returns the generator input.
func (s Stadium) Geometry() stadium.Config {
    return stadium.Config{
        TotalSeats:     s.Seats,
        SectionCount:   s.Sections,
        RowsPerSection: s.RowsPerSection,
        Center:         s.Center,
        HalfWidth:      s.HalfWidth,
        HalfHeight:     s.HalfHeight,
    }
}

// ViewOptions returns the viewport options.
func (s Stadium) ViewOptions() viewport.Options {
    return viewport.Options{
        CanvasWidth:  s.Canvas.Width,
        CanvasHeight: s.Canvas.Height,
        MinZoom:      s.Zoom.Min,
        MaxZoom:      s.Zoom.Max,
        ZoomStep:     s.Zoom.Step,
    }
}
