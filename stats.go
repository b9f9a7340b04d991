package btree

// Stats counts the structural operations a tree has performed since it was
// created. Counters only ever grow.
type Stats struct {
	Splits           int // node splits, including those caused by root promotion
	Merges           int // sibling merges
	BorrowsLeft      int // keys rotated in from a left sibling
	BorrowsRight     int // keys rotated in from a right sibling
	PredecessorSwaps int // internal keys replaced by their predecessor
	SuccessorSwaps   int // internal keys replaced by their successor
	RootGrowths      int
	RootShrinks      int
}

// Rebalances returns the total number of borrow and merge operations.
func (s Stats) Rebalances() int {
	return s.Merges + s.BorrowsLeft + s.BorrowsRight
}
