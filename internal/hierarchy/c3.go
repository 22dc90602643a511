package hierarchy

import "slices"

// c3Merge merges sequences with the C3 rule: repeatedly take the first head
// that appears in no other sequence's tail, append it, and drop it from the
// front of every sequence. When no head qualifies the merge is stuck and the
// remaining sequences are returned instead of a result.
func c3Merge(seqs [][]string) ([]string, [][]string) {
	work := make([][]string, 0, len(seqs))
	for _, s := range seqs {
		if len(s) > 0 {
			work = append(work, slices.Clone(s))
		}
	}

	var result []string

	for len(work) > 0 {
		head, ok := selectHead(work)
		if !ok {
			return nil, work
		}

		result = append(result, head)

		next := make([][]string, 0, len(work))
		for _, s := range work {
			if s[0] == head {
				s = s[1:]
			}

			if len(s) > 0 {
				next = append(next, s)
			}
		}

		work = next
	}

	return result, nil
}

func selectHead(seqs [][]string) (string, bool) {
	for _, s := range seqs {
		if !inAnyTail(s[0], seqs) {
			return s[0], true
		}
	}

	return "", false
}

func inAnyTail(name string, seqs [][]string) bool {
	for _, s := range seqs {
		if slices.Contains(s[1:], name) {
			return true
		}
	}

	return false
}
