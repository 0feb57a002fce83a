// Package cardtable is a headless 2D card table: a deck to draw from, cards
// that can be dragged freely and stacked into binds, a fan-shaped hand along
// the bottom of the screen, and a pannable, zoomable camera over a dashed
// grid.
//
// The package does no I/O. A backend supplies an [Input] each frame and a
// [Renderer] to draw into; see the display package for Ebitengine and the
// term package for terminals.
//
// # Quick start
//
//	cfg := cardtable.DefaultConfig()
//	deck := cardtable.StandardDeck(cardtable.NewRNG(1))
//	table, err := cardtable.NewTable(cfg, cardtable.Rect{Width: 1280, Height: 720}, deck)
//	if err != nil {
//		return err
//	}
//	// every frame:
//	table.Update(input, 1.0/60)
//	table.Draw(renderer)
//
// # Interaction
//
// Pressing the deck draws its top card and picks it up. Pressing a loose card
// picks it up; pressing a card that belongs to a bind picks up the whole bind,
// or detaches just that card when Shift or Ctrl is held. Pressing empty space
// pans the camera. The wheel zooms around the pointer and Escape resets the
// camera.
//
// On release, anything dropped in the bottom strip of the screen (see
// [HandConfig.ZoneHeightRatio]) that is a card joins the hand. Everything
// else snaps to the grid and, if it overlaps a card, stacks with it.
//
// # Binds
//
// A [Bind] is a stack of two or more cards sharing one position and scale.
// The first member is the leader and defines the anchor. Binds are created,
// grown, merged, and dissolved by [Registry.AttemptStack],
// [Registry.StackBind], and [Registry.Detach]; a bind never exists with
// fewer than two members.
//
// # Hand
//
// [LayoutHand] computes the hand fan from the card count, viewport, and
// pointer alone. The table runs it every frame and stores the result on each
// docked card, so the hand follows window resizes and camera moves without
// any bookkeeping.
//
// # Testing
//
// [SyntheticInput] queues scripted pointer frames, and [LoadTestScript] reads
// the same actions from JSON for use with [Table.SetTestRunner].
package cardtable
