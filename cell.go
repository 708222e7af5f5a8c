// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "slices"

// Cell accumulation for the scanline rasterizer.
//
// An edge walking through a pixel leaves behind a cell holding two
// integers: cover, the signed vertical sub-pixel extent the edge spans
// inside the pixel, and area, twice the signed area between the edge
// and the pixel's left side. Summing cells left to right along a row
// reconstructs exact anti-aliased coverage for every pixel the outline
// touches, in pure integer arithmetic (the Anti-Grain Geometry scheme).
//
// Cells are bucketed per row while edges are added, then each row is
// sorted by x and duplicate columns are merged when sweeping begins.

// cell is one pixel's accumulated coverage state.
// area is expressed in 2*PolySubpixelScale^2 units (double sub-pixel
// area), cover in PolySubpixelScale units.
type cell struct {
	x, y  int32
	cover int32
	area  int32
}

// cellSentinel marks the accumulation register as unbound to a pixel.
const cellSentinel = 0x7FFFFFFF

// dxLimit bounds the horizontal extent of a single edge. Longer edges
// are split in half recursively so the area products below stay inside
// int32.
const dxLimit = 16384 << PolySubpixelShift

// cellAccumulator collects coverage cells for one outline.
type cellAccumulator struct {
	rows    [][]cell // buckets keyed by y - rowBase
	rowBase int32    // y of rows[0]; meaningful when len(rows) > 0
	curr    cell     // accumulation register for the pixel being walked
	total   int      // cells flushed into rows since reset
	sorted  bool

	minX, minY int32
	maxX, maxY int32
}

func newCellAccumulator() *cellAccumulator {
	c := &cellAccumulator{}
	c.reset()
	return c
}

// reset discards all cells, keeping row storage for reuse.
func (c *cellAccumulator) reset() {
	for i := range c.rows {
		c.rows[i] = c.rows[i][:0]
	}
	c.rows = c.rows[:0]
	c.curr = cell{x: cellSentinel, y: cellSentinel}
	c.total = 0
	c.sorted = false
	c.minX, c.minY = 0x7FFFFFFF, 0x7FFFFFFF
	c.maxX, c.maxY = -0x7FFFFFFF, -0x7FFFFFFF
}

// rowFor returns the bucket for row y, growing the bucket table in
// either direction as the outline's vertical extent becomes known.
func (c *cellAccumulator) rowFor(y int32) *[]cell {
	if len(c.rows) == 0 {
		c.rowBase = y
		c.growRows(1)
		return &c.rows[0]
	}
	idx := int(y - c.rowBase)
	switch {
	case idx < 0:
		shift := -idx
		n := len(c.rows) + shift
		if n <= cap(c.rows) {
			rows := c.rows[:n]
			copy(rows[shift:], rows[:n-shift])
			c.rows = rows
		} else {
			rows := make([][]cell, n, max(n, 2*cap(c.rows)))
			copy(rows[shift:], c.rows)
			c.rows = rows
		}
		// Clear the vacated head entries: after the shift they alias
		// the headers that moved up.
		for i := 0; i < shift; i++ {
			c.rows[i] = nil
		}
		c.rowBase = y
		idx = 0
	case idx >= len(c.rows):
		c.growRows(idx + 1)
	}
	return &c.rows[idx]
}

// growRows extends the bucket table to n rows, reviving spare buckets
// truncated by an earlier reset before allocating new ones.
func (c *cellAccumulator) growRows(n int) {
	if n <= cap(c.rows) {
		c.rows = c.rows[:n]
		return
	}
	rows := make([][]cell, n, max(n, 2*cap(c.rows)))
	copy(rows, c.rows)
	c.rows = rows
}

// addCurrCell flushes the accumulation register into its row bucket.
// Empty cells are not stored.
func (c *cellAccumulator) addCurrCell() {
	if c.curr.area|c.curr.cover != 0 {
		row := c.rowFor(c.curr.y)
		*row = append(*row, c.curr)
		c.total++
	}
}

// setCurrCell rebinds the accumulation register to pixel (x, y),
// flushing whatever the register holds for the previous pixel.
func (c *cellAccumulator) setCurrCell(x, y int32) {
	if x != c.curr.x || y != c.curr.y {
		c.addCurrCell()
		c.curr.x, c.curr.y = x, y
		c.curr.cover, c.curr.area = 0, 0
	}
}

// line accumulates cells for the edge (x1,y1)-(x2,y2) in PolyCoord
// units. Edges of any direction and slope are handled; coverage is
// signed by vertical direction, which is what makes winding work.
func (c *cellAccumulator) line(x1, y1, x2, y2 PolyCoord) {
	dx := x2 - x1

	if dx >= dxLimit || dx <= -dxLimit {
		cx := (x1 + x2) >> 1
		cy := (y1 + y2) >> 1
		c.line(x1, y1, cx, cy)
		c.line(cx, cy, x2, y2)
		return
	}

	dy := y2 - y1
	ex1 := x1 >> PolySubpixelShift
	ex2 := x2 >> PolySubpixelShift
	ey1 := y1 >> PolySubpixelShift
	ey2 := y2 >> PolySubpixelShift
	fy1 := y1 & PolySubpixelMask
	fy2 := y2 & PolySubpixelMask

	if ex1 < c.minX {
		c.minX = ex1
	}
	if ex1 > c.maxX {
		c.maxX = ex1
	}
	if ey1 < c.minY {
		c.minY = ey1
	}
	if ey1 > c.maxY {
		c.maxY = ey1
	}
	if ex2 < c.minX {
		c.minX = ex2
	}
	if ex2 > c.maxX {
		c.maxX = ex2
	}
	if ey2 < c.minY {
		c.minY = ey2
	}
	if ey2 > c.maxY {
		c.maxY = ey2
	}

	c.setCurrCell(ex1, ey1)

	// Whole edge inside one row.
	if ey1 == ey2 {
		c.renderHLine(ey1, x1, fy1, x2, fy2)
		return
	}

	incr := int32(1)

	// Strictly vertical edge: one column, every row crossed in full,
	// no need for the run machinery.
	if dx == 0 {
		ex := x1 >> PolySubpixelShift
		twoFx := (x1 - (ex << PolySubpixelShift)) << 1

		first := int32(PolySubpixelScale)
		if dy < 0 {
			first = 0
			incr = -1
		}

		delta := first - fy1
		c.curr.cover += delta
		c.curr.area += twoFx * delta

		ey1 += incr
		c.setCurrCell(ex, ey1)

		delta = first + first - PolySubpixelScale
		area := twoFx * delta
		for ey1 != ey2 {
			c.curr.cover = delta
			c.curr.area = area
			ey1 += incr
			c.setCurrCell(ex, ey1)
		}
		delta = fy2 - PolySubpixelScale + first
		c.curr.cover += delta
		c.curr.area += twoFx * delta
		return
	}

	// General case: distribute dy across the rows the edge crosses
	// with an exact integer remainder scheme, rendering each row's
	// horizontal run as it completes.
	p := (PolySubpixelScale - fy1) * dx
	first := int32(PolySubpixelScale)

	if dy < 0 {
		p = fy1 * dx
		first = 0
		incr = -1
		dy = -dy
	}

	delta := p / dy
	mod := p % dy
	if mod < 0 {
		delta--
		mod += dy
	}

	xFrom := x1 + delta
	c.renderHLine(ey1, x1, fy1, xFrom, first)

	ey1 += incr
	c.setCurrCell(xFrom>>PolySubpixelShift, ey1)

	if ey1 != ey2 {
		p = PolySubpixelScale * dx
		lift := p / dy
		rem := p % dy
		if rem < 0 {
			lift--
			rem += dy
		}
		mod -= dy

		for ey1 != ey2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dy
				delta++
			}

			xTo := xFrom + delta
			c.renderHLine(ey1, xFrom, PolySubpixelScale-first, xTo, first)
			xFrom = xTo

			ey1 += incr
			c.setCurrCell(xFrom>>PolySubpixelShift, ey1)
		}
	}
	c.renderHLine(ey1, xFrom, PolySubpixelScale-first, x2, fy2)
}

// renderHLine accumulates the part of an edge that stays inside row ey,
// from (x1,fy1) to (x2,fy2), walking the pixel columns it crosses.
func (c *cellAccumulator) renderHLine(ey, x1, fy1, x2, fy2 int32) {
	ex1 := x1 >> PolySubpixelShift
	ex2 := x2 >> PolySubpixelShift
	fx1 := x1 & PolySubpixelMask
	fx2 := x2 & PolySubpixelMask

	// No vertical travel: nothing to accumulate, just track the pixel.
	if fy1 == fy2 {
		c.setCurrCell(ex2, ey)
		return
	}

	// Single column.
	if ex1 == ex2 {
		delta := fy2 - fy1
		c.curr.cover += delta
		c.curr.area += (fx1 + fx2) * delta
		return
	}

	// A run of adjacent columns: split dy across them with the same
	// remainder scheme line uses for rows.
	p := (PolySubpixelScale - fx1) * (fy2 - fy1)
	first := int32(PolySubpixelScale)
	incr := int32(1)

	dx := x2 - x1
	if dx < 0 {
		p = fx1 * (fy2 - fy1)
		first = 0
		incr = -1
		dx = -dx
	}

	delta := p / dx
	mod := p % dx
	if mod < 0 {
		delta--
		mod += dx
	}

	c.curr.cover += delta
	c.curr.area += (fx1 + first) * delta

	ex1 += incr
	c.setCurrCell(ex1, ey)
	fy1 += delta

	if ex1 != ex2 {
		p = PolySubpixelScale * (fy2 - fy1 + delta)
		lift := p / dx
		rem := p % dx
		if rem < 0 {
			lift--
			rem += dx
		}
		mod -= dx

		for ex1 != ex2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dx
				delta++
			}

			c.curr.cover += delta
			c.curr.area += PolySubpixelScale * delta
			fy1 += delta
			ex1 += incr
			c.setCurrCell(ex1, ey)
		}
	}
	delta = fy2 - fy1
	c.curr.cover += delta
	c.curr.area += (fx2 + PolySubpixelScale - first) * delta
}

// sortCells flushes the register, sorts every row by x and merges
// duplicate columns so each surviving cell owns its (x, y) alone.
// Cells whose contributions cancel exactly are dropped.
func (c *cellAccumulator) sortCells() {
	if c.sorted {
		return
	}
	c.addCurrCell()
	c.curr = cell{x: cellSentinel, y: cellSentinel}

	for i := range c.rows {
		row := c.rows[i]
		if len(row) < 2 {
			continue
		}
		slices.SortFunc(row, func(a, b cell) int {
			if a.x < b.x {
				return -1
			}
			if a.x > b.x {
				return 1
			}
			return 0
		})

		out := 0
		for j := 1; j < len(row); j++ {
			if row[j].x == row[out].x {
				row[out].cover += row[j].cover
				row[out].area += row[j].area
			} else {
				out++
				row[out] = row[j]
			}
		}
		row = row[:out+1]

		// Fully cancelled columns carry no information.
		out = 0
		for j := range row {
			if row[j].cover|row[j].area != 0 {
				row[out] = row[j]
				out++
			}
		}
		c.rows[i] = row[:out]
	}
	c.sorted = true
}

// rowCells returns the sorted cells of row y, nil when the row is
// outside the accumulated range. Valid after sortCells.
func (c *cellAccumulator) rowCells(y int32) []cell {
	idx := int(y - c.rowBase)
	if idx < 0 || idx >= len(c.rows) {
		return nil
	}
	return c.rows[idx]
}

// totalCells reports how many cells were flushed since reset, before
// merging. Zero means the outline never touched a pixel.
func (c *cellAccumulator) totalCells() int {
	return c.total
}
