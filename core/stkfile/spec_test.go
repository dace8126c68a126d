package stkfile

import (
	"errors"
	"testing"
	"time"
)

func TestSpecChoiceNormalization(t *testing.T) {
	s := FileSpec{
		MessageLevel:   "errors",
		CentralBody:    "EARTH",
		CoordinateAxes: "j2000",
	}
	if err := s.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if s.MessageLevel != "Errors" || s.CentralBody != "Earth" || s.CoordinateAxes != "J2000" {
		t.Fatalf("not canonicalized: %+v", s)
	}
	if s.TimeFormat != "ISO-YMD" {
		t.Fatalf("default time format = %q", s.TimeFormat)
	}
}

func TestSpecBadChoices(t *testing.T) {
	tests := []FileSpec{
		{MessageLevel: "Chatty"},
		{CentralBody: "Mars"},
		{CoordinateAxes: "BodyFixed"},
		{InterpolationMethod: "Spline"},
		{InterpolationOrder: -1},
	}
	for i, s := range tests {
		if err := s.normalize(); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("case %d: err = %v, want ErrUnsupportedFormat", i, err)
		}
	}
}

func TestSpecEpochAxesRequireEpoch(t *testing.T) {
	s := FileSpec{CoordinateAxes: "TrueOfDate"}
	if err := s.normalize(); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
	s = FileSpec{
		CoordinateAxes:      "TrueOfDate",
		CoordinateAxesEpoch: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := s.normalize(); err != nil {
		t.Fatalf("normalize with epoch: %v", err)
	}
}
