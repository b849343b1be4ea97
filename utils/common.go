package utils

import (
	"math"
	"time"
)

const (
	NODETOL = 1.e-12
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func SleepFor(milliseconds int) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// WaveNumbers returns the angular wavenumbers for an N point periodic
// transform over a domain of total length L, in FFT storage order:
// [0, 1, ..., N/2-1, -N/2, ..., -1] * 2*Pi/L
func WaveNumbers(N int, L float64) (k []float64) {
	var (
		scale = 2. * math.Pi / L
	)
	k = make([]float64, N)
	for i := 0; i < N; i++ {
		var freq float64
		if i < (N+1)/2 {
			freq = float64(i)
		} else {
			freq = float64(i - N)
		}
		k[i] = freq * scale
	}
	return
}
