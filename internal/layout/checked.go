package layout

import "math"

// checkedAdd returns a+b and false if the sum does not fit in an int.
func checkedAdd(a, b int) (int, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

// checkedMul returns a*b and false if the product does not fit in an int.
func checkedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// mul is checkedMul reporting ErrOverflow for op.
func mul(op string, a, b int) (int, error) {
	c, ok := checkedMul(a, b)
	if !ok {
		return 0, newError(op, ErrOverflow, "%d * %d", a, b)
	}
	return c, nil
}

// add is checkedAdd reporting ErrOverflow for op.
func add(op string, a, b int) (int, error) {
	c, ok := checkedAdd(a, b)
	if !ok {
		return 0, newError(op, ErrOverflow, "%d + %d", a, b)
	}
	return c, nil
}

// product multiplies extents, returning 0 as soon as any of them is 0 so
// that empty layouts never report overflow.
func product(op string, extents []int) (int, error) {
	for _, e := range extents {
		if e == 0 {
			return 0, nil
		}
	}
	n := 1
	for _, e := range extents {
		var err error
		if n, err = mul(op, n, e); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func absInt(x int) (int, bool) {
	if x == math.MinInt {
		return 0, false
	}
	if x < 0 {
		return -x, true
	}
	return x, true
}
