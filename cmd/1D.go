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
	"time"

	"github.com/notargets/gotracer/model_problems/Diffusion1D"
	"github.com/spf13/cobra"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Tracer Diffusion",
	Long: `
Diffuses a Gaussian tracer pulse on a periodic line and recovers the
diffusivity from the growth rate of the spreading diagnostic,

gotracer 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{}
		fmt.Println("1D called")
		m1d.Kappa, _ = cmd.Flags().GetFloat64("kappa")
		m1d.Sigma, _ = cmd.Flags().GetFloat64("sigma")
		m1d.XMax, _ = cmd.Flags().GetFloat64("xMax")
		m1d.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		m1d.N, _ = cmd.Flags().GetInt("n")
		m1d.RecordSteps, _ = cmd.Flags().GetInt("steps")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.PlotDir, _ = cmd.Flags().GetString("plotDir")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr)
		Run1D(m1d)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().IntP("n", "n", 1024, "number of sample points on the line")
	OneDCmd.Flags().IntP("steps", "s", 10, "number of diagnostic samples over the run")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().StringP("plotDir", "p", "", "directory for PNG plots and the animation")
	OneDCmd.Flags().Float64("kappa", 0.02, "diffusivity of the tracer")
	OneDCmd.Flags().Float64("sigma", 1.0, "initial width of the Gaussian pulse")
	OneDCmd.Flags().Float64("finalTime", 50., "FinalTime - the target end time for the sim")
	OneDCmd.Flags().Float64("xMax", 40., "length of the periodic domain")
}

type Model1D struct {
	N, RecordSteps  int
	Delay           time.Duration
	Kappa, Sigma    float64
	FinalTime, XMax float64
	Graph           bool
	PlotDir         string
}

type Model interface {
	Run(graph bool, graphDelay ...time.Duration)
}

func Run1D(m1d *Model1D) {
	c := Diffusion1D.NewDiffusion(m1d.Kappa, m1d.Sigma, m1d.FinalTime, m1d.XMax, m1d.N, m1d.RecordSteps)
	c.PlotDir = m1d.PlotDir
	c.Run(m1d.Graph, m1d.Delay*time.Millisecond)
}
