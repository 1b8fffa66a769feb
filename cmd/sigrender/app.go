package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"honnef.co/go/signature"
	"honnef.co/go/signature/capture"
	"honnef.co/go/signature/ggsurface"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "sigrender",
		Usage:     "Render recorded signature strokes to an image",
		ArgsUsage: "[recording.json]",
		Description: `Reads a recording of pointer samples (from the named file, or from standard
input if no file or "-" is given), replays it through a signature pad and
captures the result. Without --output, the image is written to standard
output as base64.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the image to this file instead of base64 to stdout",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "image format: png, jpeg, bmp or tiff (defaults to the output extension, or png)",
			},
			&cli.BoolFlag{
				Name:  "data-url",
				Usage: "write a data URL instead of plain base64",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "drawing backend: image or gg",
			},
			&cli.IntFlag{Name: "width", Usage: "canvas width"},
			&cli.IntFlag{Name: "height", Usage: "canvas height"},
			&cli.StringFlag{Name: "color", Usage: "stroke color as hex"},
			&cli.StringFlag{Name: "background", Usage: "background color as hex (default transparent)"},
			&cli.Float64Flag{Name: "velocity-filter-weight", Usage: "weight of the newest velocity reading"},
			&cli.Float64Flag{Name: "min-width", Usage: "minimum stroke width"},
			&cli.Float64Flag{Name: "max-width", Usage: "maximum stroke width"},
			&cli.Float64Flag{Name: "min-distance", Usage: "minimum pointer movement between samples"},
			&cli.BoolFlag{Name: "debug", Usage: "log every drawn segment"},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("debug") {
				level = slog.LevelDebug
			}
			signature.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Action: runRender,
	}
}

// configFromContext loads the configuration file and applies flag overrides.
func configFromContext(c *cli.Context) (config, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("color") {
		cfg.Color = c.String("color")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	if c.IsSet("velocity-filter-weight") {
		cfg.Stroke.VelocityFilterWeight = c.Float64("velocity-filter-weight")
	}
	if c.IsSet("min-width") {
		cfg.Stroke.MinWidth = c.Float64("min-width")
	}
	if c.IsSet("max-width") {
		cfg.Stroke.MaxWidth = c.Float64("max-width")
	}
	if c.IsSet("min-distance") {
		cfg.Stroke.MinDistance = c.Float64("min-distance")
	}
	return cfg, nil
}

func openRecording(c *cli.Context) (*recording, error) {
	name := c.Args().First()
	var r io.Reader = c.App.Reader
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}
	return decodeRecording(r)
}

func runRender(c *cli.Context) error {
	if c.NArg() > 1 {
		return errors.New("expected at most one recording")
	}
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	rec, err := openRecording(c)
	if err != nil {
		return err
	}
	if rec.Width > 0 && !c.IsSet("width") {
		cfg.Width = rec.Width
	}
	if rec.Height > 0 && !c.IsSet("height") {
		cfg.Height = rec.Height
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	format, err := outputFormat(cfg.Format, c.String("output"))
	if err != nil {
		return err
	}

	img, ev, err := render(cfg, rec)
	if err != nil {
		return err
	}
	signature.Logger().Info("rendered signature",
		"backend", cfg.Backend,
		"strokes", len(rec.Strokes),
		"count", ev.Count,
		"length", ev.Length,
		"target", ev.Target)

	if out := c.String("output"); out != "" && out != "-" {
		return capture.File(out, img, format)
	}
	encode := capture.Base64
	if c.Bool("data-url") {
		encode = capture.DataURL
	}
	s, err := encode(img, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, s)
	return err
}

// outputFormat picks the explicit format, falling back to the output path's
// extension and then to PNG.
func outputFormat(name, output string) (capture.Format, error) {
	if name != "" {
		return capture.ParseFormat(name)
	}
	if output != "" && output != "-" {
		if f, err := capture.FormatFromPath(output); err == nil {
			return f, nil
		}
	}
	return capture.PNG, nil
}

// drawingSurface is a surface whose contents can be captured.
type drawingSurface interface {
	signature.Surface
	signature.Clearer
	SetBackground(c color.Color)
}

func newSurface(cfg config) (drawingSurface, func() (image.Image, error)) {
	switch cfg.Backend {
	case backendGG:
		s := ggsurface.New(cfg.Width, cfg.Height)
		return s, func() (image.Image, error) {
			defer s.Close()
			img := s.Image()
			if err := s.Err(); err != nil {
				return nil, err
			}
			return img, nil
		}
	default:
		s := signature.NewImageSurface(cfg.Width, cfg.Height)
		return s, func() (image.Image, error) { return s.Image(), nil }
	}
}

// render replays rec onto a fresh surface and returns the captured image
// together with the pad's final statistics.
func render(cfg config, rec *recording) (image.Image, signature.ChangeEvent, error) {
	surface, snapshot := newSurface(cfg)
	surface.SetBackground(cfg.background())

	pad, err := signature.NewPad(surface, cfg.options())
	if err != nil {
		return nil, signature.ChangeEvent{}, err
	}
	pad.Clear()
	pad.OnChange = func(ev signature.ChangeEvent) {
		r, _ := pad.Dirty()
		signature.Logger().Debug("stroke finished", "count", ev.Count, "length", ev.Length, "dirty", r)
	}
	replay(pad, rec)

	img, err := snapshot()
	if err != nil {
		return nil, signature.ChangeEvent{}, fmt.Errorf("render: %w", err)
	}
	return img, pad.Change(), nil
}
