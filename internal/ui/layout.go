package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the minimum width to show the card source column.
	LayoutWideWidth = 110
)

// Card list limits.
const (
	// NoteMaxLines caps how many wrapped note lines a card shows.
	NoteMaxLines = 3

	// SelectionGutter is the width of the selection marker column.
	SelectionGutter = 2
)

// Timing constants.
const (
	// StatusFlashDuration is how long a status message stays in the footer.
	StatusFlashDuration = 4 * time.Second

	// InstallPromptTimeout bounds how long an accepted install may take.
	InstallPromptTimeout = 10 * time.Second
)
