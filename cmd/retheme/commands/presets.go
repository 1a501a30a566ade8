package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/retheme/cmd/retheme/opts"
	"github.com/walteh/retheme/pkg/presets"
	"github.com/walteh/retheme/pkg/text"
)

// NewPresetsCmd creates the presets command
func NewPresetsCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List the built-in presets, or the rules of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				data := pterm.TableData{{"Name", "Rules", "Subsets", "Description"}}
				for _, name := range presets.Names() {
					p, err := presets.Get(name)
					if err != nil {
						return err
					}
					data = append(data, []string{
						p.Name,
						strconv.Itoa(len(p.Rules)),
						strconv.Itoa(len(p.Conditionals)),
						p.Description,
					})
				}
				return renderTable(opts.Out, data)
			}

			p, err := presets.Get(args[0])
			if err != nil {
				return err
			}

			data := pterm.TableData{{"#", "Applies to", "Rule", "Cascade"}}
			add := func(scope string, rules text.RuleSet) {
				for _, r := range rules {
					data = append(data, []string{
						strconv.Itoa(len(data)),
						scope,
						r.String(),
						strconv.FormatBool(r.Cascade),
					})
				}
			}
			add("all", p.Rules)
			for _, c := range p.Conditionals {
				add(c.Name+" ("+c.When.String()+")", c.Rules)
			}
			return renderTable(opts.Out, data)
		},
	}

	return cmd
}
