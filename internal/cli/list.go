package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viscm-web/cmapgen/internal/colormap"
	"github.com/viscm-web/cmapgen/internal/swatch"
)

var (
	// List command flags
	listAll      bool
	listPreview  bool
	listWidth    int
	listCategory string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued colormaps",
	Long: `List the colormaps that extract would write, grouped by category, with the
source that provides each one.

With --all, catalogued names that no provider supports are listed too. With
--preview, each colormap is drawn as a truecolor strip when stdout is a
terminal and NO_COLOR is unset. With --category, only that category is listed.

Examples:
  # List the extractable colormaps
  cmapgen list

  # Show every catalogued name with terminal swatches
  cmapgen list --all --preview

  # List the diverging colormaps
  cmapgen list --category diverging`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include catalogued names with no provider")
	listCmd.Flags().BoolVarP(&listPreview, "preview", "p", false, "show colour swatches in the terminal")
	listCmd.Flags().IntVarP(&listWidth, "width", "w", swatch.DefaultWidth, "swatch width in cells")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "only list this category")
	listCmd.Flags().String("catalog", "", "YAML or JSON file overriding the category catalog")

	configFlag(listCmd.Flags(), "catalog", "catalog_file")
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	provider := buildProvider(commandContext(cmd))

	table := colormap.DefaultTable()
	if cfg.CatalogFile != "" {
		loaded, err := colormap.LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return err
		}
		table = loaded
	}
	if listCategory != "" {
		filtered, err := filterCategory(table, colormap.Category(listCategory))
		if err != nil {
			return err
		}
		table = filtered
	}
	if !listAll {
		table = colormap.BuildCatalog(table, provider.Names())
	}

	out := cmd.OutOrStdout()
	if listPreview && swatch.Enabled(out) {
		writeSwatches(out, provider, table, listWidth)
		return nil
	}
	if listPreview {
		logger.Debug("swatches disabled, stdout is not a colour terminal")
	}

	fmt.Fprint(out, catalogTable(provider, table).Render())
	return nil
}

// filterCategory narrows catalog to a single category.
func filterCategory(catalog colormap.Catalog, category colormap.Category) (colormap.Catalog, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("unknown category: %s (valid: %v)", category, colormap.Categories())
	}
	names, ok := catalog.Get(category)
	if !ok {
		return nil, fmt.Errorf("category %s is not in the catalog", category)
	}
	return colormap.Catalog{{Category: category, Names: names}}, nil
}

// catalogTable lists every name in catalog with its category and source.
func catalogTable(provider colormap.Provider, catalog colormap.Catalog) *Table {
	available := colormap.BuildCatalog(catalog, provider.Names())

	t := NewTable([]string{"CATEGORY", "NAME", "SOURCE"})
	for i, entry := range catalog {
		supported := make(map[string]bool, len(available[i].Names))
		for _, name := range available[i].Names {
			supported[name] = true
		}

		for _, name := range entry.Names {
			source := "unavailable"
			if supported[name] {
				source = colormap.SourceOf(provider, name)
			}
			t.AddRow([]string{string(entry.Category), name, source})
		}
	}
	return t
}

// writeSwatches draws each colormap in catalog as a strip, with its name on a
// background of the colormap's middle colour.
func writeSwatches(w io.Writer, provider colormap.Provider, catalog colormap.Catalog, width int) {
	nameWidth := 0
	for _, name := range catalog.Names() {
		nameWidth = max(nameWidth, len(name))
	}

	for _, entry := range catalog {
		fmt.Fprintf(w, "\n%s\n", strings.ToUpper(string(entry.Category)))
		for _, name := range entry.Names {
			colors, err := colormap.Sample(provider, name, max(width, 2))
			if err != nil {
				fmt.Fprintf(w, "  %-*s  ✗ %v\n", nameWidth, name, err)
				continue
			}
			label := swatch.Label(colors[len(colors)/2], name, nameWidth)
			fmt.Fprintf(w, "  %s  %s\n", label, swatch.Strip(colors, width))
		}
	}
}
