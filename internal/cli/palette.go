package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/config"
	"github.com/jmylchreest/huewheel/internal/harmony"
	"github.com/jmylchreest/huewheel/internal/output"
)

func newPaletteCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Compute a harmony palette from a base hue",
		Long: `Compute a palette of harmonies from a base hue.

Each enabled harmony contributes the swatches at its fixed offsets from the
base hue. An offset shared by several enabled harmonies is listed once.

  primary        0
  complementary  180
  analogous      30/60/90/270/300/330
  triadic        120/240
  split          150/210
  tetradic       90/180/270

OKLCH swatches use the chroma and a lightness of 70%; HSL swatches use the
saturation and a lightness of 50%.

Examples:
  # Complementary pair of a teal base in OKLCH
  huewheel palette --hue 200 --harmony complementary

  # Every harmony in HSL at 40% saturation
  huewheel palette -s hsl -S 40 -m all

  # Triadic palette as CSS custom properties
  huewheel palette -H 25 -m primary,triadic -f css --prefix brand-

  # JSON for scripting
  huewheel palette -H 300 -m analogous -f json -o palette.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, g)
		},
	}

	flags := cmd.Flags()
	flags.Float64P("hue", "H", 0, "base hue in degrees")
	flags.StringP("space", "s", string(harmony.SpaceOKLCH), "colour space (oklch, hsl)")
	flags.Float64P("chroma", "c", 0.15, "OKLCH chroma, nominally 0.1-0.3")
	flags.Float64P("saturation", "S", 50, "HSL saturation percentage, nominally 0-100")
	flags.StringSliceP("harmony", "m", []string{"primary", "complementary"},
		"harmonies to include (primary, complementary, analogous, triadic, split, tetradic, all)")
	flags.StringP("format", "f", string(output.FormatText), "output format (text, plain, json, css)")
	flags.String("preview", string(config.PreviewAuto), "colour previews in text output (auto, always, never)")
	flags.String("selector", output.DefaultOptions().Selector, "CSS selector for css output")
	flags.String("prefix", "", "prefix for CSS custom property names")
	flags.StringP("output", "o", "", "output file (default: stdout)")

	return cmd
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, g *globalOptions) error {
	logger := g.newLogger(cmd.ErrOrStderr())

	cfg, err := loadConfig(cmd, g, logger)
	if err != nil {
		return err
	}

	in, err := cfg.Input()
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	logger.Debug("resolved input",
		"space", in.Space,
		"hue", in.BaseHue,
		in.Space.IntensityName(), in.Intensity,
		"harmonies", fmt.Sprint(in.Enabled.Sorted()))

	if !in.InNominalRange() {
		lo, hi := in.Space.NominalRange()
		logger.Warn("intensity outside nominal range, using it as given",
			in.Space.IntensityName(), in.Intensity, "min", lo, "max", hi)
	}

	swatches, err := harmony.ProjectCatalog(in)
	if err != nil {
		return fmt.Errorf("failed to compute palette: %w", err)
	}
	logger.Debug("computed palette", "swatches", len(swatches))

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	preview, err := resolvePreview(cmd, g, cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	palette := output.Palette{Input: in, Swatches: swatches}
	if err := output.Render(&buf, format, palette, cfg.OutputOptions(preview)); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("wrote palette", "path", cfg.Output, "format", format)
		return nil
	}

	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadConfig layers defaults, the config file, environment and flags.
func loadConfig(cmd *cobra.Command, g *globalOptions, logger hclog.Logger) (config.Config, error) {
	v := config.New(g.configPath)
	if err := config.ReadFile(v, g.configPath != ""); err != nil {
		return config.Config{}, err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config file", "path", used)
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// resolvePreview decides whether to draw colour previews and switches
// coloured output on or off to match.
func resolvePreview(cmd *cobra.Command, g *globalOptions, cfg config.Config) (bool, error) {
	mode, err := config.ParsePreviewMode(cfg.Preview)
	if err != nil {
		return false, err
	}

	terminal := false
	if f, ok := cmd.OutOrStdout().(*os.File); ok && cfg.Output == "" {
		terminal = colour.SupportsANSIColours(f)
	}

	var preview bool
	switch mode {
	case config.PreviewAlways:
		preview = true
	case config.PreviewNever:
		preview = false
	default:
		preview = terminal
	}

	colour.SetEnabled(!g.noColor && (terminal || mode == config.PreviewAlways))
	return preview, nil
}
