package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"querydeck/internal/backend"
)

// ContentOps shows a hit's full, untruncated content in the ov pager,
// releasing the terminal from Bubble Tea for the duration.
type ContentOps struct {
	program *tea.Program
}

// NewContentOps creates a content pager handler
func NewContentOps() *ContentOps {
	return &ContentOps{}
}

// SetProgram sets the program reference for terminal management
func (c *ContentOps) SetProgram(p *tea.Program) {
	c.program = p
}

// ShowHit pages the complete content of hit.
func (c *ContentOps) ShowHit(hit backend.Hit) error {
	if c.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := c.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay so ov has fully exited before the terminal is restored
		time.Sleep(100 * time.Millisecond)
		_ = c.program.RestoreTerminal()
	}()

	var b strings.Builder
	b.WriteString(hit.Title)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("id: %s  score: %.3f\n\n", hit.ID, hit.Score))
	b.WriteString(hit.Content)
	b.WriteString("\n")

	root, err := oviewer.NewRoot(strings.NewReader(b.String()))
	if err != nil {
		return err
	}

	// Do not write the document back on exit, it would clobber our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
