package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gotracer/InputParameters"
)

func TestRun2D(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
Kappa: 0.01
Sigma: 1.
FinalTime: 40.
N: 128
XMax: 20.
Case: Band # Can be Blob or Band
RecordSteps: 10
`)
	var input InputParameters.InputParametersDiff
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Kappa, 0.01)
	assert.Equal(t, input.Case, "Band")
	input.Print()
	assert.Equal(t, input.FinalTime, 40.)
}
