// Package perspective lays out printable perspective guides.
//
// A guide consists of a horizon line and one or two families of rays.
// Each family radiates from a vanishing point on the horizon, in fixed
// angular increments over the full turn, and every ray is clipped to the
// page rectangle.  Vanishing points may lie beyond the left or right page
// edge; rays towards the far side of such a point are omitted.
//
// Use [Layout] to compute a [Guide] from a [Config].  The subpackages
// pdfguide and preview turn a Guide into a PDF file or a PNG image.
package perspective

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
