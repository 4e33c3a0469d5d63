package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
)

// parseBand parses "type:freq[:q[:gain]]", e.g. "bell:1000:1.2:6".
func parseBand(s string) (eq.BandParams, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 4 {
		return eq.BandParams{}, fmt.Errorf("band %q: want type:freq[:q[:gain]]", s)
	}

	typ, err := eq.ParseBandType(fields[0])
	if err != nil {
		return eq.BandParams{}, err
	}

	b := eq.BandParams{Enabled: true, Type: typ, Q: eq.DefaultQ}

	vals := []*float64{&b.CutoffHz, &b.Q, &b.GainDB}
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return eq.BandParams{}, fmt.Errorf("band %q: field %d: %w", s, i+2, err)
		}

		*vals[i] = v
	}

	return b, nil
}

// parsePass parses "freq[:order[:q]]" for the low-pass and high-pass flags.
// An empty string leaves the stage disabled.
func parsePass(s string, def eq.PassParams) (eq.PassParams, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}

	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return def, fmt.Errorf("pass %q: want freq[:order[:q]]", s)
	}

	p := def
	p.Enabled = true

	freq, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return def, fmt.Errorf("pass %q: cutoff: %w", s, err)
	}

	p.CutoffHz = freq

	if len(fields) > 1 {
		if p.Order, err = eq.ParseFilterOrder(fields[1]); err != nil {
			return def, err
		}
	}

	if len(fields) > 2 {
		if p.Q, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err != nil {
			return def, fmt.Errorf("pass %q: q: %w", s, err)
		}
	}

	return p, nil
}

// buildParams assembles a Params value from the command line pieces.
func buildParams(lp, hp string, bands []string) (eq.Params, error) {
	params := eq.DefaultParams(len(bands))

	var err error
	if params.Lowpass, err = parsePass(lp, params.Lowpass); err != nil {
		return params, err
	}

	if params.Highpass, err = parsePass(hp, params.Highpass); err != nil {
		return params, err
	}

	for i, s := range bands {
		if params.Bands[i], err = parseBand(s); err != nil {
			return params, err
		}
	}

	return params, nil
}

// slotOwners labels every dense slot with the stage that owns it, walking
// the stages in processing order.
func slotOwners(t *eq.Topology) (onePole, svf []string) {
	add := func(name string, enabled bool, order eq.FilterOrder) {
		if !enabled {
			return
		}

		op, sv := order.Sections()
		for range op {
			onePole = append(onePole, name)
		}

		for i := range sv {
			svf = append(svf, fmt.Sprintf("%s[%d]", name, i))
		}
	}

	add("lowpass", t.LowpassEnabled, t.LowpassOrder)
	add("highpass", t.HighpassEnabled, t.HighpassOrder)

	for i, enabled := range t.BandsEnabled {
		add(fmt.Sprintf("band%d", i), enabled, eq.Order2)
	}

	return onePole, svf
}

// formatLevel renders a magnitude as dB and linear amplitude. Magnitudes at
// or below floorDB are shown as silence.
func formatLevel(db, floorDB float64) (dbText, linText string) {
	lin := core.DBToLinearClamped(db, floorDB)

	shown := core.LinearToDBClamped(lin, 0)
	if math.IsInf(shown, -1) || math.IsNaN(shown) {
		return "-inf", "0"
	}

	return fmt.Sprintf("%.3f", shown), fmt.Sprintf("%.6g", lin)
}
