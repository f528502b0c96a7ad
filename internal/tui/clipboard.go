package tui

import "github.com/atotto/clipboard"

// writeClipboard is swapped out in tests so they never touch the real
// system clipboard.
var writeClipboard = clipboard.WriteAll
