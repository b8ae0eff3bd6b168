// Package notify collects the toast notifications the pages raise. The shell
// drains them into each response; nothing here is fatal and nothing retries.
package notify

import (
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	ID      string `json:"id"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// maxPending bounds the backlog; beyond it the oldest entries are dropped.
const maxPending = 32

type Center struct {
	mu      sync.Mutex
	pending []Notification
}

func NewCenter() *Center {
	return &Center{}
}

func (c *Center) Success(message string) { c.push(LevelSuccess, message) }

func (c *Center) Error(message string) { c.push(LevelError, message) }

func (c *Center) push(level Level, message string) {
	id, err := gonanoid.New()
	if err != nil {
		id = "toast"
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, Notification{ID: id, Level: level, Message: message})
	if len(c.pending) > maxPending {
		c.pending = c.pending[len(c.pending)-maxPending:]
	}
}

// Drain returns the pending notifications and clears the backlog.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	return out
}
