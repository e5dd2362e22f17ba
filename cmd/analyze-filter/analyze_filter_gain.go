// Command analyze-filter prints the channel filter fm-demod designs for a
// sample rate and bandwidth, with its DC gain and magnitude response.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	demod "github.com/tphakala/go-fm-demod"
	"github.com/tphakala/go-fm-demod/internal/cli"
	"github.com/tphakala/go-fm-demod/internal/filter"
)

const (
	defaultPoints = 512 // Frequency bins from DC to Nyquist

	// The deviation does not affect the filter; any valid value will do.
	placeholderDeviation = 1
)

// Response probe points as multiples of the cutoff
var cutoffMultiples = []float64{0, 0.5, 0.9, 1, 1.1, 1.5, 2, 3}

var CLI struct {
	SampleRate uint32 `name:"samplerate" short:"s" help:"Input sample rate in Hz." required:""`
	Bandwidth  uint32 `help:"Channel filter bandwidth in Hz." required:""`
	Points     int    `help:"Frequency bins from DC to Nyquist." default:"512"`
	Taps       bool   `help:"Print every filter tap."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("analyze-filter"),
		kong.Description("Show the fm-demod channel filter for a sample rate and bandwidth."),
		kong.UsageOnError(),
	)

	if err := analyze(os.Stdout, CLI.SampleRate, CLI.Bandwidth, CLI.Points, CLI.Taps); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

func analyze(w io.Writer, sampleRate, bandwidth uint32, points int, showTaps bool) error {
	p, err := demod.Config{
		SampleRate: sampleRate,
		Bandwidth:  bandwidth,
		Deviation:  placeholderDeviation,
	}.Derive()
	if err != nil {
		return err
	}

	fir, err := filter.NewKaiserFIR(filter.KaiserParams{
		NumTaps:     p.FilterLength,
		Cutoff:      p.FilterCutoff,
		Attenuation: p.FilterAttenuation,
	})
	if err != nil {
		return err
	}
	fir.SetScale(p.FilterScale)

	if points <= 0 {
		points = defaultPoints
	}

	taps := fir.Taps()
	var sum float64
	for _, h := range taps {
		sum += float64(h)
	}

	fmt.Fprintln(w, "=== Channel Filter ===")
	fmt.Fprintf(w, "  Taps:        %d\n", fir.Len())
	fmt.Fprintf(w, "  Cutoff:      %.6f (%s)\n", p.FilterCutoff, cli.FormatRate(bandwidth))
	fmt.Fprintf(w, "  Attenuation: %.1f dB\n", p.FilterAttenuation)
	fmt.Fprintf(w, "  Scale:       %.6f\n", fir.Scale())
	fmt.Fprintf(w, "  DC gain:     %.10f\n", sum*float64(fir.Scale()))

	if showTaps {
		fmt.Fprintln(w, "\n=== Taps (unscaled) ===")
		for i, h := range taps {
			fmt.Fprintf(w, "  h[%2d] = % .10f\n", i, h)
		}
	}

	resp := filter.ComputeFrequencyResponse(taps, float64(fir.Scale()), points)

	fmt.Fprintln(w, "\n=== Magnitude Response ===")
	for _, m := range cutoffMultiples {
		freq := m * p.FilterCutoff
		if freq > 0.5 {
			continue
		}
		hz := freq * float64(sampleRate)
		fmt.Fprintf(w, "  %4.1f x fc  %12.1f Hz  %8.2f dB\n", m, hz, filter.MagnitudeDB(resp.At(freq)))
	}

	worst := -1.0
	for k, f := range resp.Frequencies {
		if f >= 2*p.FilterCutoff {
			worst = max(worst, resp.Magnitude[k])
		}
	}
	if worst >= 0 {
		fmt.Fprintf(w, "\n  Peak beyond 2 x fc: %.2f dB\n", filter.MagnitudeDB(worst))
	}

	return nil
}
