// Package term runs a cardtable.Table in a terminal using tcell.
//
// Every terminal cell stands for a CellWidth x CellHeight block of virtual
// pixels, so the table keeps its usual geometry and the renderer projects
// cards, outlines, and the dashed grid onto cells. The mouse drives the
// table just like in a window: left button to drag, wheel to zoom, Shift or
// Ctrl to detach, and Esc to reset the camera. Ctrl+C or q quits.
package term
