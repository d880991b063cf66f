// Package graphio reads and writes food webs as GraphML, the format
// ecological network datasets ship in.
//
// What
//
//   - ReadGraphML(r) decodes the GraphML subset used by food-web
//     archives: one directed graph, nodes with an optional string
//     "name" attribute, plain source→target edges.
//   - Species labels come from the "name" attribute when the document
//     declares one, falling back to the XML node id. Duplicate labels
//     get a numeric suffix ("Ray", "Ray_2", …) so vertex IDs stay unique.
//   - The decoded graph permits self-loops and parallel edges: raw
//     datasets contain cannibal links and duplicated records, and the
//     cleaner decides their fate, not the parser.
//   - WriteGraphML(w, g, names) emits the same subset deterministically:
//     vertices sorted, edges in creation order.
//   - LoadFile / SaveFile wrap the pair with file handling.
//
// Determinism
//
//	Nodes and edges decode in document order, so edge identifiers
//	reflect file order and the cleaner's keep-first rule keeps the first
//	record the file listed. Encoding iterates sorted vertices and
//	creation-ordered edges, so equal graphs produce identical bytes.
//
// Errors
//
//   - ErrGraphNil          if a nil graph is passed to an encoder.
//   - ErrMalformedGraphML  for undecodable XML, a missing <graph>
//     element, nodes without any usable identifier, or edges whose
//     endpoints were never declared.
package graphio
