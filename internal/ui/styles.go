package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("#FF8732") // brand orange
	colorAccent    = lipgloss.Color("#D62300") // brand red
	colorSecondary = lipgloss.Color("241")     // gray
	colorMuted     = lipgloss.Color("240")     // darker gray
	colorLive      = lipgloss.Color("#34C759") // live indicator green
)

// HeaderTitle style for the app title.
var HeaderTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorAccent).
	Padding(0, 1)

// HeaderStat style for a single stat cell in the header bar.
var HeaderStat = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// HeaderStatLabel style for stat labels.
var HeaderStatLabel = lipgloss.NewStyle().
	Foreground(colorSecondary)

// LiveDot style for the live indicator.
var LiveDot = lipgloss.NewStyle().
	Foreground(colorLive).
	Bold(true)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(lipgloss.Color("212")).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for the error bar above the status bar.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("#D62300")).
	Padding(0, 1)

// HelpStyle for empty-state hints.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// LoaderStyle for the startup loader.
var LoaderStyle = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Bold(true)
