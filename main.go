// go-pathtracer renders the built-in scenes with an offline Monte Carlo path
// tracer and writes the result as PPM or PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/raster"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var cmdRoot = &cobra.Command{
	Use:          "go-pathtracer",
	Short:        "Offline Monte Carlo path tracer",
	SilenceUsage: true,
}

var (
	renderScene         string
	renderOutput        string
	renderConfig        string
	renderWidth         int
	renderHeight        int
	renderSamples       int
	renderDepth         int
	renderSeed          uint64
	renderWorkers       int
	renderDeterministic bool
	renderProgress      bool
)

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render a scene to a .ppm or .png file",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := createScene(renderScene, renderSeed)
		if err != nil {
			return err
		}

		// Config file first, then explicit flags on top
		if renderConfig != "" {
			cfg, err := scene.LoadRenderConfig(renderConfig)
			if err != nil {
				return err
			}
			cfg.Apply(s.Camera)
		}
		flagOverrides(cmd).Apply(s.Camera)
		if renderProgress {
			s.Camera.SetProgressOutput(os.Stderr)
		}

		if err := s.Preprocess(); err != nil {
			return err
		}

		img, stats, err := s.Camera.Render(s.Hittable())
		if err != nil {
			return fmt.Errorf("while rendering %q: %w", s.Name, err)
		}
		glog.Infof("Rendered %d samples on %d workers in %v, seed %d", stats.TotalSamples, stats.Workers, stats.Duration, stats.Seed)

		output := renderOutput
		if output == "" {
			output = defaultOutputPath(s.Name, time.Now())
		}
		if err := writeImage(output, img); err != nil {
			return err
		}

		fmt.Printf("Render saved as %s\n", output)
		return nil
	},
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, info := range scene.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-15s %s\n", info.Name, info.Description)
		}
		return nil
	},
}

var cmdConvert = &cobra.Command{
	Use:   "convert INPUT OUTPUT",
	Short: "Convert between .ppm, .png and .jpg images",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loaders.LoadImage(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, average luminance %.4f\n", args[0], img.Width, img.Height, img.AverageLuminance())
		return writeImage(args[1], img)
	},
}

func init() {
	flags := cmdRender.Flags()
	flags.StringVar(&renderScene, "scene", "default", "Scene to render (see the scenes command)")
	flags.StringVarP(&renderOutput, "output", "o", "", "Output file, .ppm or .png (default output/<scene>/render_<timestamp>.png)")
	flags.StringVar(&renderConfig, "config", "", "JSON file overriding the scene's render settings")
	flags.IntVar(&renderWidth, "width", 0, "Image width in pixels")
	flags.IntVar(&renderHeight, "height", 0, "Image height in pixels")
	flags.IntVar(&renderSamples, "spp", 0, "Samples per pixel")
	flags.IntVar(&renderDepth, "depth", 0, "Maximum bounces per path")
	flags.Uint64Var(&renderSeed, "seed", 0, "Seed for sampling (random if unset) and the random-spheres layout")
	flags.IntVar(&renderWorkers, "workers", 0, "Render goroutines (0 uses all CPUs)")
	flags.BoolVar(&renderDeterministic, "deterministic", false, "Seed each row chunk so output does not depend on the worker count")
	flags.BoolVar(&renderProgress, "progress", true, "Print render progress to stderr")
}

// flagOverrides collects the render flags that were set on the command line
func flagOverrides(cmd *cobra.Command) *scene.RenderConfig {
	flags := cmd.Flags()
	cfg := &scene.RenderConfig{}
	if flags.Changed("width") {
		cfg.Width = &renderWidth
	}
	if flags.Changed("height") {
		cfg.Height = &renderHeight
	}
	if flags.Changed("spp") {
		cfg.SamplesPerPixel = &renderSamples
	}
	if flags.Changed("depth") {
		cfg.MaxDepth = &renderDepth
	}
	if flags.Changed("seed") {
		cfg.Seed = &renderSeed
	}
	if flags.Changed("workers") {
		cfg.Workers = &renderWorkers
	}
	if flags.Changed("deterministic") {
		cfg.Deterministic = &renderDeterministic
	}
	return cfg
}

// createScene builds a registered scene by name
func createScene(name string, seed uint64) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: no scene given", core.ErrInvalidConfiguration)
	}
	return scene.Create(name, seed)
}

func defaultOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// writeImage saves the image in the format named by the file extension
func writeImage(path string, img *raster.Image) (err error) {
	write := raster.WritePNG
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
	case ".ppm":
		write = raster.WritePPM
	default:
		return fmt.Errorf("%w: unsupported output format %q", core.ErrInvalidConfiguration, ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating output directory: %v", core.ErrIO, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating output file: %v", core.ErrIO, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing output file: %v", core.ErrIO, cerr)
		}
	}()

	return write(file, img)
}

func main() {
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmdRoot.AddCommand(cmdRender, cmdScenes, cmdConvert)

	err := cmdRoot.Execute()
	glog.Flush()
	if err != nil {
		glog.Exitf("Error: %v", err)
	}
}
