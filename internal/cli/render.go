package cli

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/youruser/posterapp/internal/app"
	"github.com/youruser/posterapp/internal/background"
	imagepkg "github.com/youruser/posterapp/internal/image"
	"github.com/youruser/posterapp/internal/poster"
	"github.com/youruser/posterapp/internal/util"
)

var (
	renderOutput     string
	renderPrompt     string
	renderSubtitle   string
	renderDetails    string
	renderLogo       string
	renderAspect     string
	renderBackground string
	renderOffline    bool
	renderQR         string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a poster to a PNG or JPEG file",
	Long: `Render a poster to a file. The output format follows the file extension.

The background comes from the inference API when HF_TOKEN is set, from
--background when given, and otherwise from the built-in gradient.

Examples:
  poster render -o summit.png --prompt "futuristic cityscape" \
      --subtitle "Tech Summit 2024" --details $'Dec 15-17\nConvention Center'
  poster render -o summit.jpg --aspect "3:4 - Poster" --logo logo.png --offline`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "poster.png", "output file (.png, .jpg)")
	renderCmd.Flags().StringVar(&renderPrompt, "prompt", "", "background description")
	renderCmd.Flags().StringVar(&renderSubtitle, "subtitle", "", "headline text")
	renderCmd.Flags().StringVar(&renderDetails, "details", "", "detail lines, newline separated")
	renderCmd.Flags().StringVar(&renderLogo, "logo", "", "logo image file")
	renderCmd.Flags().StringVar(&renderAspect, "aspect", poster.DefaultAspect.Label, "aspect ratio label, name or ratio")
	renderCmd.Flags().StringVar(&renderBackground, "background", "", "use this image file as the background")
	renderCmd.Flags().BoolVar(&renderOffline, "offline", false, "skip the inference API and use the gradient background")
	renderCmd.Flags().StringVar(&renderQR, "qr", "", "text to encode as a QR badge")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	format, err := imagepkg.ParseFormat(filepath.Ext(renderOutput))
	if err != nil {
		return err
	}

	fonts, err := imagepkg.NewFontProvider(cfg.FontPath)
	if err != nil {
		return err
	}
	var provider background.Provider
	switch {
	case renderBackground != "":
		provider = background.File{Path: renderBackground}
	case !renderOffline:
		provider = app.Provider(cfg, logger)
	}
	gen := app.NewGeneratorWith(cfg, provider, fonts, logger)

	var logo image.Image
	if renderLogo != "" {
		data, err := os.ReadFile(renderLogo)
		if err != nil {
			return fmt.Errorf("read logo: %w", err)
		}
		if logo, err = imagepkg.DecodeImageLimit(data, cfg.MaxLogoPixels); err != nil {
			logger.Warn("logo unreadable, continuing without it", "path", renderLogo, "error", err)
		}
	}

	res := gen.Generate(cmd.Context(), poster.Request{
		Prompt:      renderPrompt,
		Subtitle:    renderSubtitle,
		Details:     renderDetails,
		Logo:        logo,
		AspectRatio: renderAspect,
		QRText:      renderQR,
	})

	if err := util.EnsureParentDir(renderOutput); err != nil {
		return err
	}
	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("create %s: %w", renderOutput, err)
	}
	if err := imagepkg.Encode(f, res.Image, format, cfg.JPEGQuality); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d (%s)\n", renderOutput,
		res.Image.Bounds().Dx(), res.Image.Bounds().Dy(), res.Aspect.Label)
	return nil
}
