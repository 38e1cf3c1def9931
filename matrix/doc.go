// Package matrix implements physical switch matrix scanning and the mapping
// from electrical scan positions to the keyboard's logical grid.
//
// The [Mapper] is a pure bijection between (driven-line, sensed-line) pairs
// and (row, column) positions. It corrects for two wiring quirks of split
// boards: a "folded" electrical grid where the two halves are stacked to
// save pins, and a 180° rotation when the controller is soldered face down.
//
// The [Scanner] drives each output line in turn, waits a caller-supplied
// settle delay, samples all input lines, and records asserted inputs at
// their mapped logical coordinates, yielding a complete raw [Grid] per call.
package matrix
