package attitude

import (
	"strings"
	"testing"
)

func TestValidateSequence(t *testing.T) {
	tests := []struct {
		f       Format
		seq     int
		wantErr bool
	}{
		{EulerAngles, 121, false},
		{EulerAngles, 323, false},
		{EulerAngles, 0, true},   // required
		{EulerAngles, 122, true}, // not a valid sequence
		{YPRAngles, 123, false},
		{YPRAngles, 121, true}, // euler-only sequence
		{YPRAnglesAndRates, 321, false},
		{Quaternions, 0, false},
		{Quaternions, 123, true}, // sequence not applicable
		{DCM, 0, false},
		{AzElAngles, 0, false},
	}
	for _, tt := range tests {
		err := tt.f.ValidateSequence(tt.seq)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%s.ValidateSequence(%d) err=%v wantErr=%v", tt.f, tt.seq, err, tt.wantErr)
		}
	}
}

func TestCheckRowQuaternion(t *testing.T) {
	// norm ~ 10.05: droppable
	if reason := Quaternions.CheckRow([]float64{1, 10, 0, 0}, 1e-3); reason == "" {
		t.Fatalf("expected non-unit quaternion to be flagged")
	} else if !strings.Contains(reason, "quaternion norm") {
		t.Fatalf("unexpected reason %q", reason)
	}
	// norm exactly 1
	if reason := Quaternions.CheckRow([]float64{0.5, 0.5, 0.5, 0.5}, 1e-3); reason != "" {
		t.Fatalf("unit quaternion flagged: %q", reason)
	}
	// within tolerance
	if reason := QuatScalarFirst.CheckRow([]float64{1.0005, 0, 0, 0}, 1e-3); reason != "" {
		t.Fatalf("in-tolerance quaternion flagged: %q", reason)
	}
	// zero tolerance argument falls back to the default
	if reason := Quaternions.CheckRow([]float64{1.0005, 0, 0, 0}, 0); reason != "" {
		t.Fatalf("default tolerance not applied: %q", reason)
	}
}

func TestCheckRowAngles(t *testing.T) {
	if reason := EulerAngles.CheckRow([]float64{0, 90, -180}, 0); reason != "" {
		t.Fatalf("valid angles flagged: %q", reason)
	}
	if reason := EulerAngles.CheckRow([]float64{0, 400, 0}, 0); reason == "" {
		t.Fatalf("out-of-range angle not flagged")
	}
	if reason := AzElAngles.CheckRow([]float64{-181, 0}, 0); reason == "" {
		t.Fatalf("out-of-range azimuth not flagged")
	}
	// vector formats carry no angle bounds
	if reason := ECFVector.CheckRow([]float64{7000, -9000, 12000}, 0); reason != "" {
		t.Fatalf("vector row flagged: %q", reason)
	}
}
