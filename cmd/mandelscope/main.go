package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/mandelscope/internal/config"
	"github.com/san-kum/mandelscope/internal/gui"
	"github.com/san-kum/mandelscope/internal/histogram"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
	"github.com/san-kum/mandelscope/internal/storage"
	"github.com/san-kum/mandelscope/internal/tui"
	"github.com/san-kum/mandelscope/internal/viewport"
)

var (
	dataDir string

	width    int
	height   int
	centerRe float64
	centerIm float64
	zoom     float64
	maxIter  uint32
	scheme   string
	equalize bool

	configFile  string
	preset      string
	supersample int
	workers     int
	outFile     string
)

// main registers the commands and flags. With no subcommand the
// interactive GUI explorer starts.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelscope",
		Short: "interactive Mandelbrot explorer",
		RunE:  runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mandelscope", "gallery directory")

	addViewFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
		cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
		cmd.Flags().Float64Var(&centerRe, "re", viewport.DefaultCenterRe, "center real part")
		cmd.Flags().Float64Var(&centerIm, "im", viewport.DefaultCenterIm, "center imaginary part")
		cmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "magnification factor")
		cmd.Flags().Uint32Var(&maxIter, "iter", config.DefaultMaxIterations, "iteration bound")
		cmd.Flags().StringVar(&scheme, "scheme", config.DefaultScheme, "color scheme")
		cmd.Flags().BoolVar(&equalize, "equalize", false, "histogram equalization")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset viewpoint")
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "interactive window explorer",
		RunE:  runGUI,
	}
	addViewFlags(guiCmd)
	addViewFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal explorer",
		RunE:  runTUI,
	}
	addViewFlags(tuiCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a frame to the gallery or a file",
		RunE:  runRender,
	}
	addViewFlags(renderCmd)
	renderCmd.Flags().IntVar(&supersample, "supersample", config.DefaultSupersample, "supersampling factor")
	renderCmd.Flags().IntVar(&workers, "workers", 0, "render workers (0 = all CPUs)")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "write PNG to file instead of the gallery")

	describeCmd := &cobra.Command{
		Use:   "describe [pixel_x] [pixel_y]",
		Short: "print escape-time info for a pixel",
		Args:  cobra.ExactArgs(2),
		RunE:  runDescribe,
	}
	addViewFlags(describeCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame computation",
		RunE:  runBench,
	}
	addViewFlags(benchCmd)

	histCmd := &cobra.Command{
		Use:   "histogram",
		Short: "plot the iteration distribution of a viewpoint",
		RunE:  runHistogram,
	}
	addViewFlags(histCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset viewpoints",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCENTER\tZOOM\tITER")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%g %+gi\t%g\t%d\n",
					name, p.Center.Re, p.Center.Im, p.Zoom, p.MaxIterations)
			}
			w.Flush()
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list color schemes",
		Run: func(cmd *cobra.Command, args []string) {
			for i, name := range palette.Names() {
				fmt.Printf("  %d  %s\n", i+1, name)
			}
		},
	}

	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "saved renders",
	}
	galleryListCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved renders",
		RunE:  runGalleryList,
	}
	galleryExportCmd := &cobra.Command{
		Use:   "export [render_id]",
		Short: "export render metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runGalleryExport,
	}
	galleryCmd.AddCommand(galleryListCmd, galleryExportCmd)

	rootCmd.AddCommand(guiCmd, tuiCmd, renderCmd, describeCmd, benchCmd,
		histCmd, presetsCmd, palettesCmd, galleryCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and CLI flags into one
// config. Precedence: flags over config file over preset over defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("re") {
		cfg.Center.Re = centerRe
	}
	if flags.Changed("im") {
		cfg.Center.Im = centerIm
	}
	if flags.Changed("zoom") {
		cfg.Zoom = zoom
	}
	if flags.Changed("iter") {
		cfg.MaxIterations = maxIter
	}
	if flags.Changed("scheme") {
		cfg.Scheme = scheme
	}
	if flags.Changed("equalize") {
		cfg.Equalize = equalize
	}
	if flags.Changed("supersample") {
		cfg.Supersample = supersample
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}

	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	app := gui.NewApp(cfg.Width, cfg.Height, palette.FromName(cfg.Scheme), cfg.Equalize)
	app.SetViewport(cfg.Viewport())
	app.Run()
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m := tui.NewModel(complex(cfg.Center.Re, cfg.Center.Im), cfg.Zoom, cfg.MaxIterations, palette.FromName(cfg.Scheme), cfg.Equalize)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}

	vp := viewport.Viewport{
		Center:        complex(cfg.Center.Re, cfg.Center.Im),
		Scale:         viewport.ScaleForZoom(cfg.Zoom, cfg.Width*ss),
		MaxIterations: cfg.MaxIterations,
	}

	r := render.New()
	if cfg.Workers > 0 {
		r = render.NewWithWorkers(cfg.Workers)
	}

	start := time.Now()
	fb := r.Render(vp, cfg.Width*ss, cfg.Height*ss)

	var table *histogram.Table
	if cfg.Equalize {
		table = fb.EqualizationTable()
	}
	img := fb.RGBA(palette.FromName(cfg.Scheme), table)
	elapsed := time.Since(start)

	if ss > 1 {
		small := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
		xdraw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		img = small
	}

	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return err
		}
		fmt.Printf("rendered %dx%d in %v -> %s\n", cfg.Width, cfg.Height, elapsed, outFile)
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	id, err := st.Save(storage.RenderMetadata{
		Width:         cfg.Width,
		Height:        cfg.Height,
		CenterRe:      cfg.Center.Re,
		CenterIm:      cfg.Center.Im,
		Zoom:          cfg.Zoom,
		MaxIterations: cfg.MaxIterations,
		Scheme:        cfg.Scheme,
		Equalized:     cfg.Equalize,
		RenderTime:    elapsed,
	}, img)
	if err != nil {
		return err
	}

	fmt.Printf("rendered %dx%d in %v\n", cfg.Width, cfg.Height, elapsed)
	fmt.Printf("render id: %s\n", id)
	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	px, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid pixel x: %s", args[0])
	}
	py, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid pixel y: %s", args[1])
	}

	info := render.Describe(cfg.Viewport(), px, py, cfg.Width, cfg.Height)

	fmt.Printf("pixel: (%d, %d)\n", px, py)
	fmt.Printf("point: %g %+gi\n", real(info.Point), imag(info.Point))
	if info.Bounded {
		fmt.Println("bounded (inside the set)")
	} else {
		fmt.Printf("iterations: %d\n", info.Iterations)
		fmt.Printf("smooth: %.6f\n", info.Smooth)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sizes := []int{256, 512, 1024}
	iters := []uint32{100, 500, 1000}
	r := render.New()

	fmt.Printf("benchmarking with %d workers\n\n", r.Workers())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tITER\tTIME\tPIXELS/SEC")

	for _, size := range sizes {
		for _, iter := range iters {
			vp := viewport.Viewport{
				Center:        complex(cfg.Center.Re, cfg.Center.Im),
				Scale:         viewport.ScaleForZoom(cfg.Zoom, size),
				MaxIterations: iter,
			}

			start := time.Now()
			fb := r.Render(vp, size, size)
			elapsed := time.Since(start)
			r.Recycle(fb)

			pps := float64(size*size) / elapsed.Seconds()
			fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\n", size, size, iter, elapsed, pps)
		}
	}

	return w.Flush()
}

func runHistogram(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Distribution shape doesn't need full resolution.
	const w, h = 320, 240
	vp := viewport.Viewport{
		Center:        complex(cfg.Center.Re, cfg.Center.Im),
		Scale:         viewport.ScaleForZoom(cfg.Zoom, w),
		MaxIterations: cfg.MaxIterations,
	}

	fb := render.New().Render(vp, w, h)

	fmt.Printf("iteration distribution (bound %d, %.1f%% escaped)\n\n",
		fb.MaxIterations, fb.EscapedFraction()*100)
	plotHistogram(fb)
	return nil
}

// plotHistogram bins the escaped-iteration counts and draws them with
// asciigraph.
func plotHistogram(fb *render.FrameBuffer) {
	const bins = 60
	counts := make([]float64, bins)
	for _, s := range fb.Samples {
		if !s.Escaped {
			continue
		}
		b := int(uint64(s.Iterations-1) * bins / uint64(fb.MaxIterations))
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	fmt.Println(asciigraph.Plot(counts,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("pixels per iteration band"),
	))
}

func runGalleryList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}

	if len(metas) == 0 {
		fmt.Println("no saved renders")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tCENTER\tZOOM\tITER\tSCHEME\tEQ")

	for _, m := range metas {
		eq := ""
		if m.Equalized {
			eq = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.6f %+.6fi\t%g\t%d\t%s\t%s\n",
			m.ID,
			m.Timestamp.Format("2006-01-02 15:04:05"),
			m.Width, m.Height,
			m.CenterRe, m.CenterIm,
			m.Zoom,
			m.MaxIterations,
			m.Scheme,
			eq,
		)
	}

	return w.Flush()
}

func runGalleryExport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
