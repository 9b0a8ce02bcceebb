// Package scene contains the procedural programs behind each culture's
// backdrop and the motif toolkit they share.
//
// Every program is a pure function of the surface size and the elapsed time,
// plus decorative noise from an injected [render.Rand]. Layout that must stay
// put between frames (building heights, lit windows, palm positions) comes
// from the index hash in motif.go; only flicker and jitter use the Rand.
package scene
