// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// PathCommand identifies a vertex emitted by a VertexSource.
//
// The low nibble carries the command, the high nibble carries
// orientation and close flags attached to PathCmdEndPoly.
type PathCommand uint32

// Path commands.
const (
	// PathCmdStop terminates iteration over a path.
	PathCmdStop PathCommand = 0

	// PathCmdMoveTo starts a new sub-path at the vertex coordinates.
	PathCmdMoveTo PathCommand = 1

	// PathCmdLineTo extends the current sub-path with a straight edge.
	PathCmdLineTo PathCommand = 2

	// PathCmdEndPoly ends the current sub-path. Combined with
	// PathFlagClose it requests an explicit closing edge.
	PathCmdEndPoly PathCommand = 0x0F

	// PathCmdMask extracts the command from a flagged value.
	PathCmdMask PathCommand = 0x0F
)

// Path flags, carried in the high nibble of PathCmdEndPoly.
// The fill pipeline closes every polygon regardless of orientation, so
// PathFlagCW and PathFlagCCW pass through unused; they exist for sources
// that tag contour direction for other consumers.
const (
	PathFlagNone  PathCommand = 0
	PathFlagCCW   PathCommand = 0x10
	PathFlagCW    PathCommand = 0x20
	PathFlagClose PathCommand = 0x40
	PathFlagMask  PathCommand = 0xF0
)

// IsStop reports whether c terminates iteration.
func (c PathCommand) IsStop() bool { return c == PathCmdStop }

// IsMoveTo reports whether c starts a new sub-path.
func (c PathCommand) IsMoveTo() bool { return c == PathCmdMoveTo }

// IsLineTo reports whether c is a straight edge vertex.
func (c PathCommand) IsLineTo() bool { return c == PathCmdLineTo }

// IsVertex reports whether c carries meaningful coordinates.
func (c PathCommand) IsVertex() bool {
	return c >= PathCmdMoveTo && c < PathCmdEndPoly
}

// IsEndPoly reports whether c ends a sub-path, with any flags.
func (c PathCommand) IsEndPoly() bool {
	return c&PathCmdMask == PathCmdEndPoly
}

// IsClose reports whether c ends a sub-path with an explicit close.
func (c PathCommand) IsClose() bool {
	return c&^(PathFlagCW|PathFlagCCW) == PathCmdEndPoly|PathFlagClose
}

// String returns the command name for diagnostics.
func (c PathCommand) String() string {
	switch c & PathCmdMask {
	case PathCmdStop:
		return "Stop"
	case PathCmdMoveTo:
		return "MoveTo"
	case PathCmdLineTo:
		return "LineTo"
	case PathCmdEndPoly:
		if c&PathFlagClose != 0 {
			return "EndPoly|Close"
		}
		return "EndPoly"
	default:
		return "Unknown"
	}
}

// VertexSource feeds path geometry to the rasterizer one vertex at a
// time.
//
// Rewind restarts iteration; pathID selects a sub-range for sources
// that store several paths in one buffer (zero means the beginning).
// Vertex returns the next command with its coordinates in user units;
// the coordinates are meaningful only when the command is a vertex.
// Iteration ends with PathCmdStop.
//
// Sources must emit flattened geometry. Curve commands are not part of
// this contract; flatten curves before feeding the rasterizer.
type VertexSource interface {
	Rewind(pathID uint32)
	Vertex() (x, y float64, cmd PathCommand)
}
