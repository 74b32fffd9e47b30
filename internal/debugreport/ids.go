// Copyright 2026 The Dbgreport Authors
// SPDX-License-Identifier: MIT

package debugreport

import (
	"strconv"
	"sync/atomic"
)

// IDGenerator hands out section anchors. Each call to Next consumes the next
// value of a monotonic counter starting at 0, so two sections built from the
// same generator never share an anchor, even when callers pass the same base.
type IDGenerator struct {
	next atomic.Int64
}

// NewIDGenerator returns a generator whose counter starts at 0.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// processIDs is shared by every Report built without WithIDs, which keeps
// anchors unique for the whole process lifetime.
var processIDs = NewIDGenerator()

// Next returns base joined with the next counter value.
//
// The counter suffix never contains the separator, so the last "-" in the
// result always splits off the counter and distinct counter values can
// never produce equal ids ("a1"+0 and "a"+10 stay apart).
func (g *IDGenerator) Next(base string) string {
	n := g.next.Add(1) - 1
	return base + "-" + strconv.FormatInt(n, 10)
}

// Issued reports how many ids the generator has handed out.
func (g *IDGenerator) Issued() int64 {
	return g.next.Load()
}
