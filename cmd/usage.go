/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sony-level/tempdir/session"
)

// usageTemplate is cobra's default template with the flag sections
// replaced by flagSections, which lists the tempdir flags separately.
const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{flagSections .}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

func setUsageTemplate(cmd *cobra.Command) {
	cobra.AddTemplateFunc("flagSections", flagSections)
	cmd.SetUsageTemplate(usageTemplate)
}

// flagSections renders the command's flags as two sections: the generic
// ones under "Flags:" and the tempdir ones under session.GroupTitle.
func flagSections(cmd *cobra.Command) string {
	general := pflag.NewFlagSet("flags", pflag.ContinueOnError)
	group := pflag.NewFlagSet(session.GroupTitle, pflag.ContinueOnError)

	add := func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		target := general
		if session.InGroup(f) {
			target = group
		}
		if target.Lookup(f.Name) == nil {
			target.AddFlag(f)
		}
	}
	cmd.LocalFlags().VisitAll(add)
	cmd.InheritedFlags().VisitAll(add)

	var sb strings.Builder
	if general.HasFlags() {
		sb.WriteString("\n\nFlags:\n")
		sb.WriteString(strings.TrimRight(general.FlagUsages(), "\n"))
	}
	if group.HasFlags() {
		sb.WriteString("\n\n" + session.GroupTitle + ":\n")
		sb.WriteString(strings.TrimRight(group.FlagUsages(), "\n"))
	}
	return sb.String()
}
