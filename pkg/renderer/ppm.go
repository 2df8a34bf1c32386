package renderer

import (
	"bufio"
	"fmt"
	"os"
)

// WritePPM serializes the image buffer to a plain-text P3 portable
// pixmap at the given path, rows top-down.
func WritePPM(buf *ImageBuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", buf.Width(), buf.Height())

	for y := buf.Height() - 1; y >= 0; y-- {
		for x := 0; x < buf.Width(); x++ {
			c := buf.At(x, y)
			ir := int(255.999 * c.X)
			ig := int(255.999 * c.Y)
			ib := int(255.999 * c.Z)
			if _, err := fmt.Fprintf(w, "%d %d %d\n", ir, ig, ib); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
