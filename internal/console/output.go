// SPDX-License-Identifier: MPL-2.0

package console

import (
	"fmt"
	"io"
)

// WriterOutput is the standard Output implementation: one line per WriteLn
// call on the wrapped writer.
type WriterOutput struct {
	w io.Writer
}

// NewOutput wraps w as a line-oriented Output.
func NewOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

// WriteLn writes text followed by a line break. An empty string emits a
// bare line break.
func (o *WriterOutput) WriteLn(text string) {
	fmt.Fprintln(o.w, text)
}
