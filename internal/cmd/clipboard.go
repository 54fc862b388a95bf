package cmd

import "github.com/atotto/clipboard"

// systemClipboard implements editor.Clipboard on the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
