// Package editor provides a Bubble Tea Markdown editor backed by a
// composer.Composer.
//
// The model lays out a toolbar, the editable Markdown pane beside a
// read-only preview pane, and a status line. Keys and toolbar clicks are
// dispatched as composer commands; clicks on preview checklist items are
// written back to the Markdown text.
package editor
