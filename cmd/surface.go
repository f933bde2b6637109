/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/notargets/mobius/InputParameters"
	"github.com/notargets/mobius/Mobius"
	"github.com/notargets/mobius/plotting"
	"github.com/notargets/mobius/utils"
)

type ModelSurface struct {
	Params       *InputParameters.InputParametersMobius
	NoPlot       bool
	Graph        bool
	Triangulated bool
	Verbose      bool
	Delay        time.Duration
}

// SurfaceCmd represents the surface command
var SurfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Compute the surface area and edge length of a Möbius strip and plot it",
	Long: `
Computes the surface area and edge length of the Möbius strip with centerline
radius R, width W and N x N mesh points, prints both to three decimals and
saves a rendering of the surface.

mobius surface -R 1.0 -w 0.3 -n 200 -o mobius_strip_plot.png`,
	RunE: runSurfaceCmd,
}

func runSurfaceCmd(cmd *cobra.Command, args []string) (err error) {
	var (
		ms *ModelSurface
	)
	if ms, err = processSurfaceInput(cmd.Flags()); err != nil {
		return
	}
	if viper.GetBool("profile") {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	_, err = RunSurface(ms)
	return
}

func init() {
	rootCmd.AddCommand(SurfaceCmd)
	addSurfaceFlags(SurfaceCmd.Flags())
	for key, flag := range map[string]string{"R": "radius", "W": "width", "N": "resolution", "OutputFile": "output"} {
		if err := viper.BindPFlag(key, SurfaceCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func addSurfaceFlags(flags *pflag.FlagSet) {
	ip := InputParameters.NewInputParametersMobius()
	flags.Float64P("radius", "R", ip.R, "R - distance from the center to the strip centerline")
	flags.Float64P("width", "w", ip.W, "W - width of the strip")
	flags.IntP("resolution", "n", ip.Resolution, "N - number of mesh points along each parameter direction")
	flags.StringP("output", "o", ip.OutputFile, "image file for the surface plot")
	flags.StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- R\n\t- W\n\t- N")
	flags.Bool("noPlot", false, "skip writing the surface plot")
	flags.BoolP("graph", "g", false, "display the boundary curves in a window, held open until interrupted")
	flags.IntP("delay", "d", 0, "milliseconds of delay after each boundary curve is plotted")
	flags.Bool("triangulated", false, "also report the area of the triangulated mesh")
}

/*
processSurfaceInput layers the parameter sources, lowest priority first:
flag defaults, the viper config file, the YAML input parameters file, then
flags given explicitly on the command line.
*/
func processSurfaceInput(flags *pflag.FlagSet) (ms *ModelSurface, err error) {
	var (
		ip   = InputParameters.NewInputParametersMobius()
		data []byte
	)
	ip.R = viper.GetFloat64("R")
	ip.W = viper.GetFloat64("W")
	ip.Resolution = viper.GetInt("N")
	ip.OutputFile = viper.GetString("OutputFile")
	if fileName, _ := flags.GetString("inputParametersFile"); len(fileName) != 0 {
		if data, err = os.ReadFile(fileName); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", fileName, err)
		}
	}
	if flags.Changed("radius") {
		ip.R, _ = flags.GetFloat64("radius")
	}
	if flags.Changed("width") {
		ip.W, _ = flags.GetFloat64("width")
	}
	if flags.Changed("resolution") {
		ip.Resolution, _ = flags.GetInt("resolution")
	}
	if flags.Changed("output") {
		ip.OutputFile, _ = flags.GetString("output")
	}
	if err = ip.Validate(); err != nil {
		return
	}
	ms = &ModelSurface{Params: ip}
	ms.NoPlot, _ = flags.GetBool("noPlot")
	ms.Graph, _ = flags.GetBool("graph")
	ms.Triangulated, _ = flags.GetBool("triangulated")
	ms.Verbose = viper.GetBool("verbose")
	dr, _ := flags.GetInt("delay")
	ms.Delay = time.Duration(dr) * time.Millisecond
	return
}

// RunSurface builds the mesh, prints the area and edge length and then, unless
// disabled, saves the surface plot. The scalar results are returned even when
// the plot fails. With Graph set the boundary chart stays open until the
// process is interrupted.
func RunSurface(ms *ModelSurface) (r *Mobius.Result, err error) {
	var (
		ip    = ms.Params
		strip *Mobius.MobiusStrip
	)
	if ms.Verbose {
		ip.Print()
	}
	if strip, err = Mobius.NewMobiusStrip(ip.R, ip.W, ip.Resolution); err != nil {
		return
	}
	if r, err = strip.Compute(ms.Triangulated); err != nil {
		return nil, err
	}
	r.Print()
	if ms.Verbose {
		fmt.Println(utils.GetMemUsage())
	}
	if !ms.NoPlot {
		opts := plotting.DefaultPlotOptions()
		opts.Width, opts.Height = ip.ImageWidth, ip.ImageHeight
		X, Y, Z := strip.Mesh()
		if err = plotting.SaveSurfacePNG(X, Y, Z, ip.OutputFile, opts); err != nil {
			return
		}
		fmt.Printf("Surface plot written to %s\n", ip.OutputFile)
	}
	if ms.Graph {
		lower, upper := strip.Boundary()
		if _, err = plotting.PlotBoundary(lower, upper, ms.Delay); err != nil {
			return
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		holdGraph(ctx)
	}
	return
}

// holdGraph keeps the process, and with it the chart window, alive until ctx
// is done.
func holdGraph(ctx context.Context) {
	fmt.Println("Boundary chart open, interrupt (Ctrl-C) to exit")
	<-ctx.Done()
}
