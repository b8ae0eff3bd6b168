package viewmodel

import (
	"testing"
	"time"
)

func TestCopyMarksSingleCard(t *testing.T) {
	c := NewClipboard()
	c.Copy("card-1")

	if !c.IsCopied("card-1") {
		t.Error("card-1 not marked")
	}
	if c.IsCopied("card-2") {
		t.Error("card-2 marked without a copy")
	}
	if c.CopiedID() != "card-1" {
		t.Errorf("CopiedID = %q", c.CopiedID())
	}

	// A second copy moves the mark, never adds one.
	c.Copy("card-2")
	if c.IsCopied("card-1") {
		t.Error("card-1 still marked")
	}
	if !c.IsCopied("card-2") {
		t.Error("card-2 not marked")
	}
}

func TestCopyAutoClears(t *testing.T) {
	c := &Clipboard{delay: 20 * time.Millisecond}
	c.Copy("card-1")

	time.Sleep(60 * time.Millisecond)
	if c.CopiedID() != "" {
		t.Errorf("mark did not clear: %q", c.CopiedID())
	}
}

func TestNewerCopySurvivesOlderClear(t *testing.T) {
	c := &Clipboard{delay: 40 * time.Millisecond}
	c.Copy("old")
	time.Sleep(20 * time.Millisecond)
	c.Copy("new")

	// The old copy's timer fires now; the newer mark must survive it.
	time.Sleep(30 * time.Millisecond)
	if got := c.CopiedID(); got != "new" {
		t.Errorf("CopiedID = %q, want new", got)
	}

	time.Sleep(40 * time.Millisecond)
	if got := c.CopiedID(); got != "" {
		t.Errorf("mark did not clear eventually: %q", got)
	}
}

func TestIsCopiedEmptyID(t *testing.T) {
	c := NewClipboard()
	if c.IsCopied("") {
		t.Error("empty id reported as copied")
	}
}
