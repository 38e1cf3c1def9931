// Package hid assembles asserted key codes into boot-protocol keyboard
// reports.
//
// A boot report is one modifier byte plus six simple key code slots, the
// fixed layout any compliant host understands without reading the report
// descriptor. [Report.Add] folds modifier codes into the bitset,
// deduplicates simple codes, and applies the truncation policy when more
// keys are asserted than fit: the first-asserted codes are retained and the
// newest are dropped.
//
// [Report.Equal] gives the scheduler a cheap change test so an unchanged
// report is never retransmitted.
package hid
