// Package display runs a cardtable.Table in an Ebitengine window.
//
// It provides the three pieces the headless table needs from a backend: a
// Renderer that draws through the table's transform stack with vector paths
// and text/v2 faces, an Input that reads the mouse, wheel, and keyboard via
// inpututil, and a Game that ties both to the Ebitengine loop together with
// an optional FPS overlay and PNG screenshots.
//
//	table, _ := cardtable.NewTable(cardtable.DefaultConfig(), viewport, deck)
//	err := display.Run(table, display.RunConfig{Title: "Cards", Width: 1280, Height: 720})
package display
