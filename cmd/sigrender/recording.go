package main

import (
	"fmt"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"

	"honnef.co/go/signature"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// recordedSample is one pointer reading. T is in milliseconds.
type recordedSample struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	T     float64 `json:"t"`
	Force float64 `json:"force,omitempty"`
}

func (s recordedSample) sample() signature.Sample {
	return signature.Sample{
		Pos:   signature.Pt(s.X, s.Y),
		Time:  time.Duration(s.T * float64(time.Millisecond)),
		Force: s.Force,
	}
}

// recording is a sequence of strokes, each a pointer-down, any number of
// pointer moves and a pointer-up.
type recording struct {
	Width   int                `json:"width,omitempty"`
	Height  int                `json:"height,omitempty"`
	Strokes [][]recordedSample `json:"strokes"`
}

func decodeRecording(r io.Reader) (*recording, error) {
	var rec recording
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode recording: %w", err)
	}
	return &rec, nil
}

// replay feeds every stroke of rec into pad. Empty strokes are skipped and a
// single-sample stroke begins and finishes at the same sample.
func replay(pad *signature.Pad, rec *recording) {
	for _, stroke := range rec.Strokes {
		if len(stroke) == 0 {
			continue
		}
		pad.Begin(stroke[0].sample())
		if len(stroke) > 2 {
			for _, s := range stroke[1 : len(stroke)-1] {
				pad.Move(s.sample())
			}
		}
		pad.Finish(stroke[len(stroke)-1].sample())
	}
}
