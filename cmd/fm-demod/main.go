// Command fm-demod demodulates FM from raw IQ samples.
//
// IQ data is read from standard input and demodulated audio is written to
// standard output, so it slots between an SDR receiver and a decoder:
//
//	rtl_sdr -f 152.84M -s 1200000 - | \
//	    fm-demod -s 1200000 -r 22050 -i u8 -o i16 --bandwidth 12500 fm --deviation 4500 | \
//	    multimon-ng -t raw -a POCSAG1200 -
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/tphakala/simd/cpu"

	demod "github.com/tphakala/go-fm-demod"
	"github.com/tphakala/go-fm-demod/internal/cli"
	"github.com/tphakala/go-fm-demod/internal/config"
	"github.com/tphakala/go-fm-demod/internal/freqdem"
	"github.com/tphakala/go-fm-demod/internal/resample"
)

// version is set via ldflags at build time
var version = "dev"

// FMCmd selects frequency modulation.
type FMCmd struct {
	Deviation  uint32 `help:"FM deviation in Hz." required:""`
	Squarewave bool   `help:"Snap output to full scale, for threshold decoders like multimon-ng."`
}

// NoneCmd is selected when no modulation is given.
type NoneCmd struct{}

// CLI is the command-line grammar.
type CLI struct {
	Config       kong.ConfigFlag  `help:"Read flag values from a YAML file." placeholder:"FILE"`
	SampleRate   uint32           `name:"samplerate" short:"s" help:"Input sample rate in Hz." required:""`
	ResampleRate uint32           `name:"resamplerate" short:"r" help:"Output sample rate in Hz (default: input rate)."`
	InType       string           `name:"intype" short:"i" help:"Input sample type." enum:"s8,u8,i16,f32" required:""`
	OutType      string           `name:"outtype" short:"o" help:"Output sample type." enum:"s8,u8,i16,f32" required:""`
	Bandwidth    uint32           `help:"Channel filter bandwidth in Hz." required:""`
	Verbose      bool             `short:"v" help:"Log pipeline parameters and stream statistics to stderr."`
	Version      kong.VersionFlag `help:"Show version information."`

	FM   FMCmd   `cmd:"" name:"fm" help:"Frequency modulation."`
	None NoneCmd `cmd:"" name:"none" default:"1" hidden:""`
}

// exitSignal carries kong's exit code out of the parser. Help and version
// exit with 0; every parse failure maps to exitFailure.
type exitSignal struct{ code int }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, streams stdin to stdout and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}
			code = sig.code
		}
	}()

	cli.Stderr = stderr

	var c CLI
	parser, err := kong.New(&c,
		kong.Name(appName),
		kong.Description("Demodulate FM from raw IQ samples on stdin to stdout."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Configuration(config.Loader),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
		kong.Writers(stderr, stderr),
		kong.Exit(func(code int) {
			if code != exitOK {
				code = exitFailure
			}
			panic(exitSignal{code})
		}),
	)
	if err != nil {
		cli.PrintError(err.Error())
		return exitFailure
	}

	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	logger := newLogger(stderr, c.Verbose)
	cli.PrintBanner(appName, version)

	if ctx.Command() != "fm" {
		cli.PrintError(fmt.Sprintf("modulation not specified, check <%s -h> for available modulations", appName))
		return exitFailure
	}

	if err := c.runFM(logger, stdin, stdout); err != nil {
		cli.PrintError(err.Error())
		return exitFailure
	}
	return exitOK
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (c *CLI) demodConfig() demod.Config {
	return demod.Config{
		SampleRate:   c.SampleRate,
		ResampleRate: c.ResampleRate,
		Bandwidth:    c.Bandwidth,
		Deviation:    c.FM.Deviation,
	}
}

func (c *CLI) codecs() (in, out demod.Codec, err error) {
	inEnc, err := demod.ParseEncoding(c.InType)
	if err != nil {
		return nil, nil, fmt.Errorf("intype: %w", err)
	}
	outEnc, err := demod.ParseEncoding(c.OutType)
	if err != nil {
		return nil, nil, fmt.Errorf("outtype: %w", err)
	}
	if in, err = demod.CodecFor(inEnc); err != nil {
		return nil, nil, err
	}
	if out, err = demod.CodecFor(outEnc); err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

func (c *CLI) runFM(logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	params, err := c.demodConfig().Derive()
	if err != nil {
		return err
	}
	in, out, err := c.codecs()
	if err != nil {
		return err
	}

	chain, err := demod.NewChain(params)
	if err != nil {
		return err
	}

	logger.Debug("pipeline configured",
		"params", params,
		"intype", in.Encoding(),
		"outtype", out.Encoding(),
		"squarewave", c.FM.Squarewave,
		"simd", cpu.Info(),
	)
	if rs, ok := chain.Resampler.(*resample.Resampler); ok {
		logger.Debug("resampler",
			"passthrough", rs.Passthrough(),
			"ratio", rs.Ratio(),
			"latency_samples", rs.Latency(),
		)
	}
	if dem, ok := chain.Demodulator.(*freqdem.Demodulator); ok {
		logger.Debug("demodulator", "factor", dem.Factor())
	}

	d := &demod.Driver{
		In:         in,
		Out:        out,
		Squarewave: c.FM.Squarewave,
		Chain:      chain,
	}

	r := bufio.NewReaderSize(stdin, readBufferSize)
	w := bufio.NewWriterSize(stdout, writeBufferSize)

	start := time.Now()
	stats, err := d.Run(r, w)
	elapsed := time.Since(start)
	if err != nil {
		logger.Debug("stream aborted", "iterations", stats.Iterations, "bytes_in", stats.BytesIn)
		return err
	}

	logger.Debug("end of stream",
		"iterations", stats.Iterations,
		"bytes_in", stats.BytesIn,
		"bytes_out", stats.BytesOut,
		"samples_in", stats.SamplesIn,
		"samples_out", stats.SamplesOut,
		"elapsed", elapsed,
	)
	if c.Verbose {
		cli.PrintSummary("Stream complete",
			"Input", cli.FormatBytes(stats.BytesIn)+" @ "+cli.FormatRate(params.InputRate),
			"Output", cli.FormatBytes(stats.BytesOut)+" @ "+cli.FormatRate(params.OutputRate),
			"Chunks", fmt.Sprint(stats.Iterations),
			"Elapsed", elapsed.Round(time.Millisecond).String(),
		)
	}
	return nil
}
