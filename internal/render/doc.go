// Package render defines the contract between the backdrop dispatcher and the
// procedural programs that paint it.
//
//   - [Surface]: the canvas-like 2D drawing context a program paints into
//   - [RenderFunc]: one program; paints a full frame for an elapsed time
//   - [Catalog]: the fixed culture → program table with a default fallback
//   - [Rand]: the injectable source of decorative randomness
//
// Programs must be total. They are called with surfaces of any size,
// including 0×0, and must never panic.
package render
