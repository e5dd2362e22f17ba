package cli

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Stderr
	Stderr = &buf
	t.Cleanup(func() { Stderr = prev })
	return &buf
}

func TestPrinters(t *testing.T) {
	buf := captureStderr(t)

	PrintBanner("fm-demod", "v1.2.3")
	PrintError("boom")
	PrintWarning("careful")
	PrintInfo("Rate", "48 kHz")

	out := buf.String()
	assert.Contains(t, out, "fm-demod")
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "Rate:")
	assert.Contains(t, out, "48 kHz")
}

func TestPrintVersion(t *testing.T) {
	buf := captureStderr(t)
	PrintVersion("fm-demod", "dev")
	assert.Contains(t, buf.String(), "Version:")
	assert.Contains(t, buf.String(), "dev")
}

func TestPrintSummary(t *testing.T) {
	buf := captureStderr(t)
	PrintSummary("Stream complete", "Chunks", "3", "Output", "1.0 KB", "odd")

	out := buf.String()
	assert.Contains(t, out, "Stream complete")
	assert.Contains(t, out, "Chunks:")
	assert.Contains(t, out, "1.0 KB")
	assert.NotContains(t, out, "odd", "unpaired trailing key is ignored")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in))
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   uint32
		want string
	}{
		{500, "500 Hz"},
		{48000, "48 kHz"},
		{22050, "22.05 kHz"},
		{2000000, "2 MHz"},
		{1024000, "1.024 MHz"},
		{2400001, "2400.001 kHz"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRate(tt.in))
	}
}

type helpCLI struct {
	SampleRate uint32 `name:"samplerate" short:"s" help:"Input sample rate."`
	InType     string `name:"intype" enum:"s8,u8" default:"u8" help:"Input type."`
	FM         struct {
		Deviation uint32 `help:"FM deviation."`
	} `cmd:"" name:"fm" help:"Frequency modulation."`
}

func TestStyledHelpPrinter(t *testing.T) {
	var stdout bytes.Buffer
	var cli helpCLI
	parser, err := kong.New(&cli,
		kong.Name("fm-demod"),
		kong.Description("Demodulate IQ."),
		kong.Writers(&stdout, &stdout),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{})),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	out := stdout.String()
	assert.Contains(t, out, "fm-demod")
	assert.Contains(t, out, "Demodulate IQ.")
	assert.Contains(t, out, "Modulations:")
	assert.Contains(t, out, "Frequency modulation.")
	assert.Contains(t, out, "-s, --samplerate")
	assert.Contains(t, out, "[s8|u8]")
	assert.Contains(t, out, "(default: u8)")
	assert.Contains(t, out, "-h, --help")
}

func TestStyledHelpPrinter_Subcommand(t *testing.T) {
	var stdout bytes.Buffer
	var cli helpCLI
	parser, err := kong.New(&cli,
		kong.Name("fm-demod"),
		kong.Writers(&stdout, &stdout),
		kong.Help(StyledHelpPrinter(kong.HelpOptions{})),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"fm", "--help"})

	out := stdout.String()
	assert.Contains(t, out, "fm flags:")
	assert.Contains(t, out, "--deviation")
}
