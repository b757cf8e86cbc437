package render

// FillCellRGBA converts float RGBA cell data into byte RGBA pixels. Both
// buffers are row-major from the top-left corner, the origin convention shared
// with the grid store. Values are clamped to [0, 1]; NaN resolves to 0.
func FillCellRGBA(buf []byte, cells []float32) {
	n := len(cells)
	if len(buf) < n {
		n = len(buf)
	}
	for i := 0; i < n; i++ {
		buf[i] = toByte(cells[i])
	}
}

func toByte(v float32) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
