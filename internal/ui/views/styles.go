package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title              lipgloss.Style
	Prompt             lipgloss.Style
	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style
	SuggestionScore    lipgloss.Style
	HitTitle           lipgloss.Style
	HitTitleSelected   lipgloss.Style
	HitScore           lipgloss.Style
	HitContent         lipgloss.Style
	Stats              lipgloss.Style
	Error              lipgloss.Style
	Dim                lipgloss.Style
	Loading            lipgloss.Style
	Help               lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Prompt:             lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Suggestion:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SuggestionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		SuggestionScore:    lipgloss.NewStyle().Faint(true),
		HitTitle:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		HitTitleSelected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")),
		HitScore:           lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		HitContent:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Stats:              lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:              lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dim:                lipgloss.NewStyle().Faint(true),
		Loading:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:               lipgloss.NewStyle().Faint(true),
	}
}
