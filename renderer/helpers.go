package renderer

import (
	"bytes"
	"io"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) error {
	var bw bytes.Buffer
	if !block(&bw) {
		return nil
	}
	_, err := io.Copy(w, &bw)
	return err
}
