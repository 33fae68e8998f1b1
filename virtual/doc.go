// Package virtual is the layout engine behind the grouped word list. It
// turns per-group item counts into a flat sequence of header and item
// entries, tracks measured row heights, and decides which slice of that
// sequence must be rendered for a given scroll position.
//
// The engine knows nothing about terminals or any other rendering
// surface. A renderer plans a Window, renders the entries it names, and
// reports each entry's measured height back through the Measurer port.
// All heights and offsets are in lines.
//
// The package is not safe for concurrent use. One renderer owns one
// HeightCache and calls into it from its update loop only.
package virtual
