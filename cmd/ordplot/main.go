// Command ordplot renders binary sample traces to PNG charts using the
// zedgraph axis scale kinds.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Valday/zedgraph"
)

var rootCmd = &cobra.Command{
	Use:   "ordplot",
	Short: "Render sample traces with ordinal axis scales",
}

var renderCmd = &cobra.Command{
	Use:   "render <trace.bin>",
	Short: "Render a big-endian float64 trace file to a PNG chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	f := renderCmd.Flags()
	f.String("scale", "linearordinal", "x axis scale kind: linear | ordinal | linearordinal")
	f.Int("samples", 0, "number of samples to read (0 = whole file)")
	f.Float64("rate", 1, "sample rate in samples per second")
	f.String("out", "trace.png", "output PNG path")
	f.Float64("width", 8, "plot width in inches")
	f.Float64("height", 4.5, "plot height in inches")
	for _, name := range []string{"scale", "samples", "rate", "out", "width", "height"} {
		_ = viper.BindPFlag("render."+name, f.Lookup(name))
	}

	rootCmd.AddCommand(renderCmd)
}

func initConfig() {
	viper.SetConfigName("ordplot")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/ordplot")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ORDPLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]

	size := viper.GetInt("render.samples")
	if size == 0 {
		fi, err := os.Stat(path)
		if err != nil {
			return err
		}
		size = int(fi.Size() / 8)
	}

	tr, err := zedgraph.ReadTrace(path, size, viper.GetFloat64("render.rate"))
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"samples": tr.Len(),
		"bytes":   humanize.Bytes(uint64(tr.Len() * 8)),
		"rate":    tr.SampleRate,
	}).Info("trace loaded")

	pane := &zedgraph.Pane{}
	pane.Add(&zedgraph.Curve{Label: filepath.Base(path), Points: tr})

	var (
		scale   zedgraph.Scale
		ordinal bool
	)
	switch kind := viper.GetString("render.scale"); kind {
	case "linear":
		scale = zedgraph.NewLinearScale()
	case "ordinal":
		scale, ordinal = zedgraph.NewOrdinalScale(), true
	case "linearordinal":
		scale, ordinal = zedgraph.NewLinearAsOrdinalScale(), true
	default:
		return fmt.Errorf("unknown scale kind %q", kind)
	}

	scale.PickScale(pane, zedgraph.RoleX)

	p := plot.New()
	p.Title.Text = filepath.Base(path)
	p.X.Tick.Marker = zedgraph.Ticker{Scale: scale, Pane: pane, Role: zedgraph.RoleX}

	var pts plotter.XYer = tr
	if ordinal {
		pts = zedgraph.OrdinalPoints{XYer: tr}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	if mag := scale.State().Mag; mag != 0 {
		p.X.Label.Text = fmt.Sprintf("×10^%d", mag)
	}

	out := viper.GetString("render.out")
	w := vg.Length(viper.GetFloat64("render.width")) * vg.Inch
	h := vg.Length(viper.GetFloat64("render.height")) * vg.Inch
	if err := p.Save(w, h, out); err != nil {
		return err
	}
	log.WithField("out", out).Info("chart written")
	return nil
}
