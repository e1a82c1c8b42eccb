package memmanager

// PolicyFunc is the placement policy ABI: given a required word count
// and a hole snapshot (§4.3 packed format, count followed by head/size
// pairs in ascending head order), it returns the head word of the
// chosen hole, or -1 if none fits. A policy must not mutate or retain
// the snapshot.
type PolicyFunc func(requiredWords int, snapshot []uint16) int

// BestFit chooses the hole minimizing size-requiredWords among holes
// that fit. Ties are broken by earlier head (strict < when scanning
// in ascending-head order).
func BestFit(requiredWords int, snapshot []uint16) int {
	if len(snapshot) == 0 {
		return -1
	}

	count := int(snapshot[0])
	best := -1
	bestWaste := -1

	for i := 0; i < count; i++ {
		head := int(snapshot[1+i*2])
		size := int(snapshot[2+i*2])

		if size < requiredWords {
			continue
		}

		waste := size - requiredWords
		if bestWaste == -1 || waste < bestWaste {
			bestWaste = waste
			best = head
		}
	}

	return best
}

// WorstFit chooses the hole maximizing size-requiredWords among holes
// that fit. Ties are broken by earlier head (strict > when scanning).
func WorstFit(requiredWords int, snapshot []uint16) int {
	if len(snapshot) == 0 {
		return -1
	}

	count := int(snapshot[0])
	worst := -1
	worstWaste := -1

	for i := 0; i < count; i++ {
		head := int(snapshot[1+i*2])
		size := int(snapshot[2+i*2])

		if size < requiredWords {
			continue
		}

		waste := size - requiredWords
		if waste > worstWaste {
			worstWaste = waste
			worst = head
		}
	}

	return worst
}

// FirstFit chooses the first hole encountered (ascending head) that fits.
func FirstFit(requiredWords int, snapshot []uint16) int {
	if len(snapshot) == 0 {
		return -1
	}

	count := int(snapshot[0])

	for i := 0; i < count; i++ {
		size := int(snapshot[2+i*2])
		if size >= requiredWords {
			return int(snapshot[1+i*2])
		}
	}

	return -1
}

// NextFitCursor wraps next-fit's scan-resume state. Unlike BestFit,
// WorstFit and FirstFit, next-fit is not a pure function of its
// arguments: it remembers where the previous allocation landed. That
// state lives here, on the caller-held cursor, so the PolicyFunc values
// handed to a Manager stay simple function values.
type NextFitCursor struct {
	lastHead int
	hasLast  bool
}

// NewNextFitCursor creates a cursor starting at the beginning of the
// hole list, equivalent to first-fit until the first successful
// allocation.
func NewNextFitCursor() *NextFitCursor {
	return &NextFitCursor{}
}

// Policy returns a PolicyFunc bound to this cursor.
func (c *NextFitCursor) Policy() PolicyFunc {
	return func(requiredWords int, snapshot []uint16) int {
		if len(snapshot) == 0 {
			return -1
		}

		count := int(snapshot[0])
		if count == 0 {
			return -1
		}

		start := 0

		if c.hasLast {
			for i := 0; i < count; i++ {
				if int(snapshot[1+i*2]) > c.lastHead {
					start = i
					break
				}

				if i == count-1 {
					start = count
				}
			}
		}

		for i := start; i < count; i++ {
			head := int(snapshot[1+i*2])
			size := int(snapshot[2+i*2])

			if size >= requiredWords {
				c.lastHead = head
				c.hasLast = true

				return head
			}
		}

		for i := 0; i < start; i++ {
			head := int(snapshot[1+i*2])
			size := int(snapshot[2+i*2])

			if size >= requiredWords {
				c.lastHead = head
				c.hasLast = true

				return head
			}
		}

		return -1
	}
}
