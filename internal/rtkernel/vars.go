package rtkernel

var (
	Debug   = false // set to true for verbose debug output
	PNG     = false // set to true to also save a PNG preview next to the PPM
	Workers = 0     // number of render workers, <= 0 means runtime.NumCPU()
)
