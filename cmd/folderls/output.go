package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for folder titles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for slugs, links and dates
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// itemStyle for listed page titles
	itemStyle = lipgloss.NewStyle().
			Bold(true)

	// folderStyle for listed folders
	folderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// tagStyle for tags
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error messages
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the folder header
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)
