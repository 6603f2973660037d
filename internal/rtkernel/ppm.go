package rtkernel

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// ToPPM encodes the canvas as plain-text PPM (P3).
//
// Body lines never exceed PPMMaxLine characters. When a pixel does not fit,
// the encoder tries, in order: R and G on the current line with B carried over;
// only R on the current line with G and B carried over; flushing the current
// line and starting the next one with the whole pixel.
func (c *Canvas) ToPPM() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P3\n%d %d\n%d\n", c.Width, c.Height, PPMMaxValue)

	for y := 0; y < c.Height; y++ {
		n := 0 // chars on the current line, trailing space included
		for x := 0; x < c.Width; x++ {
			r, g, b := c.Pix[y*c.Width+x].U8()
			rs := strconv.Itoa(int(r))
			gs := strconv.Itoa(int(g))
			bs := strconv.Itoa(int(b))
			px := rs + " " + gs + " " + bs + " "

			if n+len(px) <= PPMMaxLine {
				buf.WriteString(px)
				n += len(px)
				continue
			}

			left := PPMMaxLine - n
			switch rg := rs + " " + gs + "\n"; {
			case len(rg) <= left:
				buf.WriteString(rg)
				buf.WriteString(bs + " ")
				n = len(bs) + 1
			case len(rs)+1 <= left:
				buf.WriteString(rs + "\n")
				gb := gs + " " + bs + " "
				buf.WriteString(gb)
				n = len(gb)
			default:
				trimSpace(&buf)
				buf.WriteByte('\n')
				buf.WriteString(px)
				n = len(px)
			}
		}
		trimSpace(&buf)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// trimSpace drops a single trailing separator space, if any.
func trimSpace(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == ' ' {
		buf.Truncate(n - 1)
	}
}

// WritePPM writes the P3 encoding of c to w.
func (c *Canvas) WritePPM(w io.Writer) error {
	_, err := io.WriteString(w, c.ToPPM())
	return err
}

// SavePPM writes the P3 encoding of c to path, creating parent directories.
func (c *Canvas) SavePPM(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WritePPM(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
