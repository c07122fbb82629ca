// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors defines pointer cursor kinds, following the
// standard CSS cursor names.
package cursors

// Cursor is a pointer cursor kind. Values follow the standard CSS
// cursor names: https://developer.mozilla.org/en-US/docs/Web/CSS/cursor
type Cursor int32

const (
	// Arrow is the default arrow cursor.
	Arrow Cursor = iota

	// ContextMenu indicates that a context menu is available.
	ContextMenu

	// Help indicates that help information is available.
	Help

	// Pointer is a pointing hand that indicates a link or another
	// clickable element.
	Pointer

	// Progress indicates that the app is busy in the background but
	// can still be interacted with.
	Progress

	// Wait indicates that the app is busy and cannot be interacted with.
	Wait

	// Crosshair is a human-vision style crosshair, often used for
	// precise selection.
	Crosshair

	// Text indicates that text can be selected, as in a text edit field.
	Text

	// Move indicates that something can be moved in any direction.
	Move

	// Grab indicates that something can be grabbed and dragged.
	Grab

	// Grabbing indicates that something is actively being grabbed.
	Grabbing

	// NotAllowed indicates that the requested action cannot be carried out.
	NotAllowed

	// ResizeEW indicates horizontal (east-west) resizing.
	ResizeEW

	// ResizeNS indicates vertical (north-south) resizing.
	ResizeNS

	CursorsN
)

var cursorNames = []string{"arrow", "context-menu", "help", "pointer",
	"progress", "wait", "crosshair", "text", "move", "grab", "grabbing",
	"not-allowed", "resize-ew", "resize-ns"}

func (c Cursor) String() string {
	if 0 <= c && c < CursorsN {
		return cursorNames[c]
	}
	return "arrow"
}
