package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name   string
	Entry  lipgloss.Style
	Active lipgloss.Style
	Header lipgloss.Style
	Dim    lipgloss.Style
}

// DefaultTheme styles the status line. Active keeps the bold green the
// original status line used for the running timer.
var DefaultTheme = Theme{
	Name:   "Default",
	Entry:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Active: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	Header: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}
