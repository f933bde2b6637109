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
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/notargets/mobius/Mobius"
)

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Resolution study of the surface area and edge length estimates",
	Long: `
Repeats the surface calculation while halving the grid spacing and reports the
observed order of convergence of each estimate,

mobius convergence -R 1 -w 0.3 --nStart 21 --levels 5`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			cs *ConvergenceStudy
		)
		R, _ := cmd.Flags().GetFloat64("radius")
		W, _ := cmd.Flags().GetFloat64("width")
		nStart, _ := cmd.Flags().GetInt("nStart")
		levels, _ := cmd.Flags().GetInt("levels")
		if cs, err = RunConvergence(R, W, nStart, levels); err != nil {
			return
		}
		cs.Print()
		return
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().Float64P("radius", "R", Mobius.DefaultR, "R - distance from the center to the strip centerline")
	ConvergenceCmd.Flags().Float64P("width", "w", Mobius.DefaultW, "W - width of the strip")
	ConvergenceCmd.Flags().Int("nStart", 21, "N for the coarsest level, N-1 doubles with each level")
	ConvergenceCmd.Flags().Int("levels", 5, "number of resolution levels")
}

type ConvergenceStudy struct {
	R, W       float64
	numPTS     []int
	area, edge []float64
}

func NewConvergenceStudy(R, W float64) *ConvergenceStudy {
	return &ConvergenceStudy{R: R, W: W}
}

func (cs *ConvergenceStudy) Add(numPTS int, area, edge float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.area = append(cs.area, area)
	cs.edge = append(cs.edge, edge)
}

func (cs *ConvergenceStudy) Levels() int { return len(cs.numPTS) }

// Order returns the observed convergence order at level k >= 2 from the ratio
// of successive differences, with the grid spacing halved between levels.
// Levels below 2 and stagnated sequences return NaN.
func (cs *ConvergenceStudy) Order(k int) (areaOrder, edgeOrder float64) {
	order := func(f []float64) float64 {
		if k < 2 || k >= len(f) {
			return math.NaN()
		}
		e1, e2 := math.Abs(f[k-1]-f[k-2]), math.Abs(f[k]-f[k-1])
		if e1 == 0 || e2 == 0 {
			return math.NaN()
		}
		return math.Log2(e1 / e2)
	}
	return order(cs.area), order(cs.edge)
}

func (cs *ConvergenceStudy) Print() {
	fmt.Printf("R = %8.5f, W = %8.5f\n", cs.R, cs.W)
	fmt.Printf("%8s %14s %14s %8s %14s %14s %8s\n", "N", "Area", "dArea", "Order", "Edge", "dEdge", "Order")
	for k, n := range cs.numPTS {
		var dA, dE float64
		if k > 0 {
			dA, dE = cs.area[k]-cs.area[k-1], cs.edge[k]-cs.edge[k-1]
		}
		pA, pE := cs.Order(k)
		fmt.Printf("%8d %14.8f %14.3e %8.3f %14.8f %14.3e %8.3f\n", n, cs.area[k], dA, pA, cs.edge[k], dE, pE)
	}
}

func RunConvergence(R, W float64, nStart, levels int) (cs *ConvergenceStudy, err error) {
	if levels < 1 {
		return nil, fmt.Errorf("%w: levels must be >= 1, got %d", Mobius.ErrInvalidParameter, levels)
	}
	if err = (Mobius.ShapeParameters{R: R, W: W, N: nStart}).Validate(); err != nil {
		return
	}
	cs = NewConvergenceStudy(R, W)
	for k := 0; k < levels; k++ {
		var (
			strip *Mobius.MobiusStrip
			r     *Mobius.Result
			N     = (nStart-1)<<k + 1
		)
		if strip, err = Mobius.NewMobiusStrip(R, W, N); err != nil {
			return nil, err
		}
		if r, err = strip.Compute(false); err != nil {
			return nil, err
		}
		cs.Add(N, r.Area, r.EdgeLength)
	}
	return
}
