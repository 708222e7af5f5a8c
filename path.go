// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Path is an append-only vertex buffer implementing VertexSource.
//
// It stores flattened geometry only: move, line and close commands.
// Producers that work with curves flatten them before appending.
// The zero value is an empty path ready for use.
type Path struct {
	cmds []PathCommand
	xs   []float64
	ys   []float64
	iter int
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.append(x, y, PathCmdMoveTo)
}

// LineTo extends the current sub-path with a straight edge to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.append(x, y, PathCmdLineTo)
}

// ClosePolygon ends the current sub-path with an explicit closing edge.
func (p *Path) ClosePolygon() {
	p.append(0, 0, PathCmdEndPoly|PathFlagClose)
}

// EndPoly ends the current sub-path with the given flags. Most callers
// want ClosePolygon; EndPoly exists for sources that tag orientation.
func (p *Path) EndPoly(flags PathCommand) {
	p.append(0, 0, PathCmdEndPoly|flags&PathFlagMask)
}

// StartNewPath returns the index of the next vertex, for use as the
// pathID of a later Rewind. It appends nothing.
func (p *Path) StartNewPath() uint32 {
	return uint32(len(p.cmds))
}

// RemoveAll empties the path, keeping capacity for reuse.
func (p *Path) RemoveAll() {
	p.cmds = p.cmds[:0]
	p.xs = p.xs[:0]
	p.ys = p.ys[:0]
	p.iter = 0
}

// TotalVertices returns the number of stored commands.
func (p *Path) TotalVertices() int {
	return len(p.cmds)
}

// Rewind restarts iteration at the vertex index pathID.
func (p *Path) Rewind(pathID uint32) {
	p.iter = int(pathID)
}

// Vertex returns the next stored command and its coordinates.
func (p *Path) Vertex() (x, y float64, cmd PathCommand) {
	if p.iter >= len(p.cmds) {
		return 0, 0, PathCmdStop
	}
	i := p.iter
	p.iter++
	return p.xs[i], p.ys[i], p.cmds[i]
}

func (p *Path) append(x, y float64, cmd PathCommand) {
	p.cmds = append(p.cmds, cmd)
	p.xs = append(p.xs, x)
	p.ys = append(p.ys, y)
}
