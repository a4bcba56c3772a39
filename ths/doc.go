// Package ths provides in-place, comparison-based sorting of slices.
//
// The package combines three algorithm families behind one API:
//
//   - Sort / SortFunc: an adaptive, unstable hybrid of quicksort partitioning,
//     median-of-three and median-of-sixteen pivot selection, shell sort,
//     heapsort and insertion sort. Already-ascending and strictly-descending
//     inputs are detected in one linear pass; heapsort bounds the worst case
//     at O(n log n).
//   - Stable / StableFunc: a stable merge sort whose merges trim the sorted
//     prefix and suffix by binary search, merge tiny sides in place by
//     rotation and buffer only the smaller side otherwise.
//   - StaticSort and FeatureSort: distribution sorts for numeric types that
//     map each value linearly into one of n slots. StaticSort permutes in
//     place and is unstable; FeatureSort buckets into scratch slices and is
//     stable. Both approach linear time on roughly uniform data.
//
// # Ranges
//
// Every function sorts the whole slice it is given, so a sub-range [a, b)
// can be sorted with Sort(x[a:b]). The *Range variants take the bounds
// explicitly and panic if they do not satisfy 0 <= a <= b <= len(x).
// With a comparator that is a valid total order, elements outside the range
// are never read or written.
//
// # Comparators
//
// The Func variants take a three-way comparator in the style of cmp.Compare:
// negative when a < b, zero when equal and positive when a > b. It must
// define a total order over the elements being sorted. With an
// inconsistent comparator the resulting order is unspecified and the call
// may panic with an index out of range.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-thsort/ths"
//
//	func SortScores(scores []float64) {
//	    ths.Sort(scores)
//	}
//
//	func SortUsers(users []User) {
//	    ths.StableFunc(users, func(a, b User) int {
//	        return strings.Compare(a.Name, b.Name)
//	    })
//	}
//
// # Concurrency
//
// Calls hold no shared state. Disjoint slices, or disjoint ranges of the
// same slice, may be sorted from different goroutines at the same time.
package ths
