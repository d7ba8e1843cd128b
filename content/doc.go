// Package content defines the prepared content model consumed by the
// flow engine: classified elements (spacing, paragraphs, blocks, placed
// boxes, breaks, footnotes) and the location identities that let
// introspection refer back to the element that produced a piece of
// rendered output.
//
// Elements here are already classified and measured inputs, not markup:
// parsing and styling happen upstream (see the markup package for one
// front end). The flow engine reads only an element's classification
// fields; payloads like Text and Children are interpreted by the layout
// delegate.
//
// # Locations
//
// Every element that layout may need to identify later (footnotes above
// all) gets a [Location] from a [Locator]. Locators support
// checkpoint/restore so a speculative layout attempt can be rolled back
// without leaking or colliding identities:
//
//	cp := loc.Checkpoint()
//	// ... speculative layout assigning locations ...
//	loc.Restore(cp) // discard them again
package content
