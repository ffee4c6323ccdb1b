package kernel

// ComplexKernel is a complex-valued 1-D kernel used by
// filter1d.ComplexFilterPass for disc/bokeh-style separable filters: Re
// and Im hold the real and imaginary coefficient arrays, same length,
// same radius convention as Kernel.
type ComplexKernel struct {
	Re, Im []float32
	Radius int
}

// Length returns the full kernel length 2*Radius+1.
func (c ComplexKernel) Length() int { return 2*c.Radius + 1 }
