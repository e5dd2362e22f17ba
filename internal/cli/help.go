package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DialAmber)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(PanelGray).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(DialAmber).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(DialCyan).
			Bold(true)

	helpCommandStyle = lipgloss.NewStyle().
				Foreground(DialGreen).
				Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(PanelGray).
				Italic(true)
)

// StyledHelpPrinter renders kong help with lipgloss styling. Flags of the
// selected subcommand are listed after the global flags.
func StyledHelpPrinter(_ kong.HelpOptions) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render(ctx.Model.Name))
		sb.WriteString("\n")
		if ctx.Model.Help != "" {
			sb.WriteString(helpDescStyle.Render(ctx.Model.Help))
			sb.WriteString("\n")
		}

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(usage(ctx))
		sb.WriteString("\n")

		if cmds := commands(ctx.Model.Node); len(cmds) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Modulations:"))
			sb.WriteString("\n")
			for _, c := range cmds {
				sb.WriteString("  ")
				sb.WriteString(helpCommandStyle.Render(c.name))
				if c.help != "" {
					sb.WriteString("  ")
					sb.WriteString(c.help)
				}
				sb.WriteString("\n")
			}
		}

		writeFlags(&sb, "Flags:", ctx.Model.Node.Flags, true)
		if sel := ctx.Selected(); sel != nil {
			writeFlags(&sb, sel.Name+" flags:", sel.Flags, false)
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

func usage(ctx *kong.Context) string {
	if sel := ctx.Selected(); sel != nil {
		return fmt.Sprintf("%s [flags] %s [%s flags]", ctx.Model.Name, sel.Name, sel.Name)
	}
	return fmt.Sprintf("%s [flags] <modulation> [modulation flags] < iq.raw > out.raw", ctx.Model.Name)
}

type command struct {
	name string
	help string
}

func commands(node *kong.Node) []command {
	var cmds []command
	for _, child := range node.Children {
		if child.Hidden {
			continue
		}
		cmds = append(cmds, command{name: child.Name, help: child.Help})
	}
	return cmds
}

type flag struct {
	flags      string
	help       string
	defaultVal string
}

func writeFlags(sb *strings.Builder, title string, flags []*kong.Flag, withHelp bool) {
	list := getFlags(flags, withHelp)
	if len(list) == 0 {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range list {
		sb.WriteString("  ")
		sb.WriteString(helpFlagStyle.Render(f.flags))
		if f.help != "" {
			sb.WriteString("  ")
			sb.WriteString(f.help)
		}
		if f.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + f.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func getFlags(flags []*kong.Flag, withHelp bool) []flag {
	var out []flag

	if withHelp {
		out = append(out, flag{
			flags: "-h, --help",
			help:  "Show context-sensitive help.",
		})
	}

	for _, f := range flags {
		if f.Name == "help" || f.Hidden {
			continue
		}

		flagStr := ""
		if f.Short != 0 {
			flagStr = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		} else {
			flagStr = fmt.Sprintf("--%s", f.Name)
		}

		if !f.IsBool() && f.PlaceHolder != "" {
			flagStr += "=" + strings.ToUpper(f.PlaceHolder)
		}

		help := f.Help
		if f.Enum != "" {
			help += " [" + strings.ReplaceAll(f.Enum, ",", "|") + "]"
		}

		defaultVal := ""
		if f.HasDefault && !f.IsBool() && f.Default != "" {
			defaultVal = f.Default
		}

		out = append(out, flag{
			flags:      flagStr,
			help:       help,
			defaultVal: defaultVal,
		})
	}

	return out
}
