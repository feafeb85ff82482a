package quiz

import "github.com/manual-labs/quizflow/internal/catalog"

// FilterRestricted removes products forbidden by any answer given in the
// session. The restricted set is the union over every rule whose answer id
// appears in answerIDs. Candidate order is preserved; the result may be
// empty.
func FilterRestricted(candidates []int64, answerIDs []int64, rules []catalog.RestrictionRule) []int64 {
	given := make(map[int64]struct{}, len(answerIDs))
	for _, id := range answerIDs {
		given[id] = struct{}{}
	}
	restricted := make(map[int64]struct{})
	for _, r := range rules {
		if _, ok := given[r.AnswerID]; ok {
			restricted[r.ProductID] = struct{}{}
		}
	}
	out := make([]int64, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := restricted[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
