// Package model provides the intermediate representation (IR) for mind-map
// content.
//
// This package defines the data structures that the document loader produces
// and the renderers consume. The central type is [Topic], an owned tree: each
// node exclusively owns its children, with no back references, mirroring the
// acyclic structure the source format guarantees.
//
// # Topics
//
// A [Topic] carries optional text (empty string means none), an optional
// canvas position, and an ordered list of child topics in canonical order:
// primary subtopics first, then the left group, the right group, and finally
// floating topics, each internally in document order.
//
// # Geometry
//
// [Point] represents a manually-placed canvas position. Positions attached to
// a Topic are always finite; non-numeric or non-finite coordinates in the
// source are dropped at extraction time, so consumers never need to re-check.
package model
