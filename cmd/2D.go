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
	"os"
	"time"

	"github.com/notargets/gotracer/InputParameters"
	"github.com/notargets/gotracer/model_problems/Diffusion2D"
	"github.com/spf13/cobra"
)

type Model2D struct {
	ICFile  string
	Graph   bool
	Delay   time.Duration
	PlotDir string
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional tracer diffusion, blob or band initial conditions",
	Long:  `Two dimensional tracer diffusion, blob or band initial conditions`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		m2d.PlotDir, _ = cmd.Flags().GetString("plotDir")
		dr, _ := cmd.Flags().GetInt("delay")
		m2d.Delay = time.Duration(time.Duration(dr) * time.Millisecond)
		ip := processInput(m2d)
		Run2D(m2d, ip)
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParametersDiff) {
	var (
		err error
	)
	if len(m2d.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
Kappa: 0.01
Sigma: 1.
FinalTime: 40
N: 128
XMax: 20
Case: Blob # Can be "Band"
RecordSteps: 10
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(m2d.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersDiff{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Kappa\n\t- Case (Blob or Band)")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	TwoDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	TwoDCmd.Flags().StringP("plotDir", "p", "", "directory for PNG plots and the animation")
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParametersDiff) {
	ip.Print()
	c := Diffusion2D.NewDiffusion(
		ip.Kappa, ip.Sigma, ip.FinalTime, ip.XMax,
		ip.N, ip.RecordSteps, Diffusion2D.NewCaseType(ip.Case))
	c.PlotDir = m2d.PlotDir
	c.Run(m2d.Graph, m2d.Delay)
}
