// File: memsys/counting.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Instrumented block source wrapper for tests and growth diagnostics.

package memsys

import (
	"fmt"

	"github.com/momentics/objpool/api"
)

// Counting wraps a block source, counting every Grab and optionally failing
// after a set number of successful grabs. It is the instrumentation hook used
// to assert pool growth behavior.
type Counting struct {
	src api.BlockSource

	// Grabs is the number of Grab calls observed so far.
	Grabs int

	// FailAfter, when non-negative, makes every Grab beyond that many
	// successful calls fail. The default -1 never injects a failure.
	FailAfter int
}

// NewCounting wraps src with a grab counter and no failure injection.
func NewCounting(src api.BlockSource) *Counting {
	return &Counting{src: src, FailAfter: -1}
}

func (c *Counting) Grab(size, align int) ([]byte, error) {
	if c.FailAfter >= 0 && c.Grabs >= c.FailAfter {
		c.Grabs++
		return nil, fmt.Errorf("counting source: grab limit %d reached", c.FailAfter)
	}
	c.Grabs++
	return c.src.Grab(size, align)
}

var _ api.BlockSource = (*Counting)(nil)
