package viewmodel

import (
	"sync"
	"time"
)

// CopiedDelay is how long a card keeps its "copied" affordance.
const CopiedDelay = 2 * time.Second

// Clipboard tracks which single card in a list currently shows the copied
// check mark. Scoped to one list, not process-wide; the id comparison decides
// the highlighted card and the mark auto-clears after a fixed delay.
type Clipboard struct {
	mu    sync.Mutex
	id    string
	gen   int
	delay time.Duration
}

func NewClipboard() *Clipboard {
	return &Clipboard{delay: CopiedDelay}
}

// Copy marks the given card id as copied and schedules the auto-clear. A
// newer Copy supersedes the pending clear of an older one.
func (c *Clipboard) Copy(id string) {
	c.mu.Lock()
	c.id = id
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen == gen {
			c.id = ""
		}
	})
}

// IsCopied reports whether the given card is the one showing the affordance.
func (c *Clipboard) IsCopied(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return id != "" && c.id == id
}

// CopiedID returns the currently marked card id, empty when none.
func (c *Clipboard) CopiedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}
