// Command eqinfo prints the section layout, coefficients and magnitude
// response of an equalizer setting.
//
// Usage:
//
//	eqinfo [flags] [band ...]
//
// Each band is given as type:freq[:q[:gain]] with type one of bell,
// lowshelf, highshelf, notch, allpass. The pass stages are enabled with
// -lp and -hp as freq[:order[:q]].
//
// Examples:
//
//	eqinfo bell:1000:1.4:6
//	eqinfo -hp 30:4 -lp 16000:2 lowshelf:120:0.7:-3 highshelf:8000:0.7:2
//	eqinfo -measure -fft 16384 notch:50:8
//	eqinfo -kernels
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/measure/response"
)

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	lp := flag.String("lp", "", "low-pass stage as freq[:order[:q]] (disabled when empty)")
	hp := flag.String("hp", "", "high-pass stage as freq[:order[:q]] (disabled when empty)")
	points := flag.Int("points", 16, "number of log-spaced response points")
	lo := flag.Float64("lo", 20, "lowest response frequency in Hz")
	hi := flag.Float64("hi", 20000, "highest response frequency in Hz")
	measure := flag.Bool("measure", false, "also measure the response from the rendered impulse response")
	fftSize := flag.Int("fft", 8192, "FFT size for -measure (power of two)")
	floor := flag.Float64("floor", -120, "magnitudes at or below this level in dB are shown as silence")
	noClamp := flag.Bool("no-clamp", false, "use parameters as given instead of clamping them to usable ranges")
	kernels := flag.Bool("kernels", false, "list available processing kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqinfo [flags] [band ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints layout, coefficients and response of an EQ setting.\n")
		fmt.Fprintf(os.Stderr, "Bands are type:freq[:q[:gain]], type one of bell, lowshelf, highshelf, notch, allpass.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqinfo bell:1000:1.4:6\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -hp 30:4 -lp 16000:2 lowshelf:120:0.7:-3\n")
		fmt.Fprintf(os.Stderr, "  eqinfo -measure -fft 16384 notch:50:8\n")
	}
	flag.Parse()

	if *kernels {
		for _, name := range eq.Kernels() {
			fmt.Println(name)
		}

		return
	}

	params, err := buildParams(*lp, *hp, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if !*noClamp {
		params.Clamp(*rate)
	}

	e, err := eq.NewCoeffEngine(*rate, len(params.Bands))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := e.Set(params); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	e.Flush()

	var measured *response.Result
	if *measure {
		measured, err = response.Measure(params, core.WithSampleRate(*rate), core.WithBlockSize(*fftSize))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if err := printLayout(tw, e); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write layout: %v\n", err)
		os.Exit(1)
	}

	freqs := response.LogFrequencies(*lo, *hi, *points)
	if err := printResponse(tw, response.Analytic(e, *rate, freqs), measured, *floor); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write response: %v\n", err)
		os.Exit(1)
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printLayout(tw *tabwriter.Writer, e *eq.CoeffEngine) error {
	opOwners, svOwners := slotOwners(e.Topology())

	if _, err := fmt.Fprintf(tw, "Slot\tKind\tStage\tCoefficients\n----\t----\t-----\t------------\n"); err != nil {
		return err
	}

	for i, c := range e.OnePole() {
		if _, err := fmt.Fprintf(tw, "%d\tone-pole\t%s\ta0=%.9g b1=%.9g m0=%g m1=%g\n",
			i, opOwners[i], c.A0, c.B1, c.M0, c.M1); err != nil {
			return err
		}
	}

	for i, c := range e.SVF() {
		if _, err := fmt.Fprintf(tw, "%d\tsvf\t%s\ta1=%.9g a2=%.9g a3=%.9g m0=%.6g m1=%.6g m2=%.6g\n",
			i, svOwners[i], c.A1, c.A2, c.A3, c.M0, c.M1, c.M2); err != nil {
			return err
		}
	}

	if e.Empty() {
		if _, err := fmt.Fprintf(tw, "-\t-\tbypass\t-\n"); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(tw)

	return err
}

func printResponse(tw *tabwriter.Writer, analytic []response.Point, measured *response.Result, floorDB float64) error {
	header := "Freq [Hz]\tMagnitude [dB]\tGain\tPhase [rad]"
	rule := "---------\t--------------\t----\t-----------"

	if measured != nil {
		header += "\tMeasured [dB]"
		rule += "\t-------------"
	}

	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return err
	}

	for _, pt := range analytic {
		db, lin := formatLevel(pt.MagnitudeDB, floorDB)
		row := fmt.Sprintf("%.1f\t%s\t%s\t%.4f", pt.FreqHz, db, lin, pt.PhaseRad)

		if measured != nil {
			mdb, _ := formatLevel(measured.At(pt.FreqHz).MagnitudeDB, floorDB)
			row += "\t" + mdb
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return err
		}
	}

	return nil
}
