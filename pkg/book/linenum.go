package book

import "fmt"

// LineCounter tracks the current line number while a file is rendered.
// It starts at 1 and only ever moves forward; a fresh counter is created for
// every file.
type LineCounter struct {
	line int
}

// NewLineCounter returns a counter positioned on line 1.
func NewLineCounter() *LineCounter {
	return &LineCounter{line: 1}
}

// Current returns the line the counter is on.
func (c *LineCounter) Current() int {
	return c.line
}

// Label formats the current line number as a fixed-width gutter label:
// right-aligned in four runes with a trailing separator space. It does not
// advance the counter.
func (c *LineCounter) Label() string {
	return fmt.Sprintf("%4d ", c.line)
}

// Advance moves the counter to the next line. It is called once per line
// break, never for the final line of a file.
func (c *LineCounter) Advance() {
	c.line++
}
