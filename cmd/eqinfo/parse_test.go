package main

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

func TestParseBand(t *testing.T) {
	tests := []struct {
		in      string
		want    eq.BandParams
		wantErr bool
	}{
		{in: "bell:1000:1.4:6", want: eq.BandParams{Enabled: true, Type: eq.Bell, CutoffHz: 1000, Q: 1.4, GainDB: 6}},
		{in: "notch:50", want: eq.BandParams{Enabled: true, Type: eq.Notch, CutoffHz: 50, Q: eq.DefaultQ}},
		{in: "HighShelf:8000:0.7:-2.5", want: eq.BandParams{Enabled: true, Type: eq.HighShelf, CutoffHz: 8000, Q: 0.7, GainDB: -2.5}},
		{in: "bell", wantErr: true},
		{in: "peak:100", wantErr: true},
		{in: "bell:abc", wantErr: true},
		{in: "bell:1:2:3:4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBand(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}

				return
			}

			if err != nil {
				t.Fatalf("parseBand: %v", err)
			}

			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildParamsAndSlotOwners(t *testing.T) {
	params, err := buildParams("16000:4:1", "30:1", []string{"bell:1000", "notch:60:10"})
	if err != nil {
		t.Fatalf("buildParams: %v", err)
	}

	if !params.Lowpass.Enabled || params.Lowpass.Order != eq.Order4 || params.Lowpass.Q != 1 {
		t.Fatalf("lowpass = %+v", params.Lowpass)
	}

	if !params.Highpass.Enabled || params.Highpass.Order != eq.Order1 || params.Highpass.CutoffHz != 30 {
		t.Fatalf("highpass = %+v", params.Highpass)
	}

	e, err := eq.NewCoeffEngine(48000, len(params.Bands))
	if err != nil {
		t.Fatalf("NewCoeffEngine: %v", err)
	}

	if err := e.Set(params); err != nil {
		t.Fatalf("Set: %v", err)
	}

	e.Flush()

	onePole, svf := slotOwners(e.Topology())
	if len(onePole) != len(e.OnePole()) || len(svf) != len(e.SVF()) {
		t.Fatalf("owners (%d,%d) vs slots (%d,%d)", len(onePole), len(svf), len(e.OnePole()), len(e.SVF()))
	}

	want := []string{"lowpass[0]", "lowpass[1]", "band0[0]", "band1[0]"}
	for i := range want {
		if svf[i] != want[i] {
			t.Fatalf("svf owner %d = %q, want %q", i, svf[i], want[i])
		}
	}

	if onePole[0] != "highpass" {
		t.Fatalf("one-pole owner = %q", onePole[0])
	}

	if _, err := buildParams("x", "", nil); err == nil {
		t.Fatal("expected error for bad low-pass")
	}

	if _, err := buildParams("", "100:3", nil); err == nil {
		t.Fatal("expected error for order 3")
	}
}

func TestFormatLevel(t *testing.T) {
	tests := []struct {
		db      float64
		wantDB  string
		wantLin string
	}{
		{db: 0, wantDB: "0.000", wantLin: "1"},
		{db: -6, wantDB: "-6.000", wantLin: "0.501187"},
		{db: 20, wantDB: "20.000", wantLin: "10"},
		{db: -120, wantDB: "-inf", wantLin: "0"},
		{db: -300, wantDB: "-inf", wantLin: "0"},
		{db: math.Inf(-1), wantDB: "-inf", wantLin: "0"},
	}

	for _, tt := range tests {
		gotDB, gotLin := formatLevel(tt.db, -120)
		if gotDB != tt.wantDB || gotLin != tt.wantLin {
			t.Fatalf("formatLevel(%v) = (%q, %q), want (%q, %q)", tt.db, gotDB, gotLin, tt.wantDB, tt.wantLin)
		}
	}
}
