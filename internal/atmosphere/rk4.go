package atmosphere

// RK4 integrates y' = f(x, y) with the classical fixed-step
// fourth-order Runge-Kutta scheme, starting at (x0, y0) and taking n
// steps of size h. It returns the final y.
func RK4(f func(x, y Real) Real, x0, y0, h Real, n int) Real {
	x, y := x0, y0
	for i := 0; i < n; i++ {
		k1 := f(x, y)
		k2 := f(x+h/2, y+h*k1/2)
		k3 := f(x+h/2, y+h*k2/2)
		k4 := f(x+h, y+h*k3)
		y += h * (k1 + 2*k2 + 2*k3 + k4) / 6
		x += h
	}
	return y
}
