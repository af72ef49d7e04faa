package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/skillhouse/skillet/pkg/presenter"
	"github.com/skillhouse/skillet/pkg/skills"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Inspect discovered skills",
	Long: `List discovered skills, show a single skill, or compile the prompt catalog.

Extra search roots from the skills.dirs config key are appended after the
built-in roots and treated as project-level: skills found there override
user-level skills of the same name.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all discovered skills",
	Long:  `List all discovered skills with their names, locations, directories, and descriptions.`,
	Run: func(cmd *cobra.Command, _ []string) {
		listSkillsCmd(cmd)
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-name>",
	Short: "Show a single skill",
	Long: `Show the prompt block for a skill, or its metadata as YAML.

Examples:
  skillet skill show my-workflow
  skillet skill show my-workflow --format yaml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showSkillCmd(cmd, args[0])
	},
}

var skillCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Compile the budget-bounded skill catalog",
	Long: `Compile the tag-wrapped skill catalog used in discovery prompts. The
output is bounded by the character budget; skills that do not fit are
omitted whole rather than truncated.`,
	Run: func(cmd *cobra.Command, _ []string) {
		catalogCmd(cmd)
	},
}

func init() {
	skillShowCmd.Flags().StringP("format", "f", "prompt", "Output format (prompt, yaml)")
	skillCatalogCmd.Flags().IntP("budget", "b", 0, "Character budget (defaults to skills.catalog_budget)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillCatalogCmd)
	rootCmd.AddCommand(skillCmd)
}

// loadRegistry runs a fresh load pass against a scoped registry so CLI
// invocations never mutate the process-wide default.
func loadRegistry(cmd *cobra.Command) (*skills.Registry, error) {
	opts := []skills.LoaderOption{
		skills.WithRegistry(skills.NewRegistry()),
	}

	if extra := extraSearchRoots(viper.GetStringSlice("skills.dirs")); len(extra) > 0 {
		opts = append(opts, skills.WithAdditionalSearchRoots(extra...))
	}

	loader, err := skills.NewLoader(opts...)
	if err != nil {
		return nil, err
	}

	return loader.LoadAll(cmd.Context()), nil
}

// extraSearchRoots maps the skills.dirs config entries to search roots.
// Configured dirs are always project-level: pointing the config at a
// directory is an explicit project decision, wherever that directory lives.
func extraSearchRoots(dirs []string) []skills.SearchRoot {
	if len(dirs) == 0 {
		return nil
	}

	roots := make([]skills.SearchRoot, 0, len(dirs))
	for _, dir := range dirs {
		roots = append(roots, skills.SearchRoot{Path: dir, Location: skills.LocationProject})
	}
	return roots
}

func listSkillsCmd(cmd *cobra.Command) {
	registry, err := loadRegistry(cmd)
	if err != nil {
		presenter.Error(err, "Failed to load skills")
		os.Exit(1)
	}

	all := registry.ListAll()
	if len(all) == 0 {
		presenter.Info("No skills found")
		return
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLOCATION\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t--------\t---------\t-----------")

	for _, skill := range all {
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", skill.Name, skill.Location, skill.Path, description)
	}
	tw.Flush()
}

// skillDetail is the YAML shape printed by `skill show --format yaml`.
type skillDetail struct {
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	Location     string         `yaml:"location"`
	Path         string         `yaml:"path"`
	AllowedTools []string       `yaml:"allowed-tools,omitempty"`
	License      string         `yaml:"license,omitempty"`
	Metadata     map[string]any `yaml:"metadata,omitempty"`
}

func showSkillCmd(cmd *cobra.Command, name string) {
	registry, err := loadRegistry(cmd)
	if err != nil {
		presenter.Error(err, "Failed to load skills")
		os.Exit(1)
	}

	skill := registry.Get(name)
	if skill == nil {
		presenter.Error(fmt.Errorf("skill %q not found", name), "Skill not found")
		os.Exit(1)
	}

	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "yaml":
		detail := skillDetail{
			Name:         skill.Name,
			Description:  skill.Description,
			Location:     string(skill.Location),
			Path:         skill.Path,
			AllowedTools: skill.AllowedTools,
			License:      skill.License,
			Metadata:     skill.Metadata,
		}
		out, err := yaml.Marshal(detail)
		if err != nil {
			presenter.Error(err, "Failed to render skill metadata")
			os.Exit(1)
		}
		fmt.Print(string(out))
	default:
		fmt.Println(skill.Prompt())
	}
}

func catalogCmd(cmd *cobra.Command) {
	registry, err := loadRegistry(cmd)
	if err != nil {
		presenter.Error(err, "Failed to load skills")
		os.Exit(1)
	}

	budget, _ := cmd.Flags().GetInt("budget")
	if budget <= 0 {
		budget = viper.GetInt("skills.catalog_budget")
	}

	fmt.Println(registry.GenerateCatalog(budget))
}
