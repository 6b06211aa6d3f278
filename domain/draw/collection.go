package draw

import (
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
)

// Collection is the ordered draw history for exactly one game, newest first.
// It is purely structural: callers insert already-validated Draws only.
// Collection is not safe for concurrent use; callers serialize access.
type Collection struct {
	draws []Draw
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{}
}

// InsertFront prepends a single draw as the newest entry
func (c *Collection) InsertFront(d Draw) {
	c.draws = append([]Draw{d}, c.draws...)
}

// InsertChronological bulk-inserts draws supplied oldest-first, reversing them
// so the most recent supplied draw lands at the front of the collection.
func (c *Collection) InsertChronological(draws []Draw) {
	for _, d := range draws {
		c.InsertFront(d)
	}
}

// RemoveAt deletes the draw at the given newest-first index. An invalid index
// is a caller bug and is signalled explicitly rather than ignored.
func (c *Collection) RemoveAt(index int) error {
	if index < 0 || index >= len(c.draws) {
		return errors.IndexOutOfRange(index, len(c.draws))
	}
	c.draws = append(c.draws[:index], c.draws[index+1:]...)
	return nil
}

// Clear discards every draw
func (c *Collection) Clear() {
	c.draws = nil
}

// Len returns the number of held draws
func (c *Collection) Len() int {
	return len(c.draws)
}

// Draws returns a newest-first copy of the collection
func (c *Collection) Draws() []Draw {
	out := make([]Draw, len(c.draws))
	for i, d := range c.draws {
		out[i] = d.Clone()
	}
	return out
}

// Chronological returns an oldest-first copy, the order prediction prompts use
func (c *Collection) Chronological() []Draw {
	out := make([]Draw, len(c.draws))
	for i, d := range c.draws {
		out[len(c.draws)-1-i] = d.Clone()
	}
	return out
}
