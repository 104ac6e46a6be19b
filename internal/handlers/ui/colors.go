package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor   = color.New(color.FgCyan).SprintFunc()
	ErrorColor  = color.New(color.FgRed).SprintFunc()
	PromptColor = color.New(color.FgMagenta).SprintFunc()
	DetailColor = color.New(color.FgHiBlack).SprintFunc() // For less prominent details and notes
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
