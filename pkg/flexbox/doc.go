// Package flexbox is a small flex layout engine whose per-child
// configuration lives entirely in attached properties.
//
// A [Row] or [Column] measures plain [Box] children and divides leftover
// main-axis space among children with a positive [Flex] factor. The boxes
// themselves declare neither a flex field nor an offset field: the container
// reads [Flex] and writes [ChildOffset] through the property package, which
// is the pattern this module exists to demonstrate.
package flexbox
