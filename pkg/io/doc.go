// Package io writes carved mazes as JSON and writes finished artifacts to disk.
//
// # JSON Format
//
// [WriteJSON] emits the grid dimensions, the snapped start and end cells, the
// row-major cell rows using the same glyphs as [maze.Grid.String], and the
// passages of the spanning tree as junction pairs:
//
//	{
//	  "width": 5,
//	  "height": 3,
//	  "start": {"x": 0, "y": 0},
//	  "end": {"x": 4, "y": 2},
//	  "rows": ["S    ", "#### ", "E    "],
//	  "passages": [
//	    [{"x": 0, "y": 0}, {"x": 2, "y": 0}]
//	  ]
//	}
//
// # Files
//
// [WriteFile] writes through a temporary file in the destination directory
// and renames it into place, so an interrupted run never leaves a truncated
// image behind.
package io
