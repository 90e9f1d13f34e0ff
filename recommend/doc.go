// Package recommend ranks books for a reader by combining two scorers in a
// weighted ensemble.
//
// # Scorers
//
//   - Collaborative: books rated at or above MinLikedStars by the reader's
//     direct neighbors in the affinity graph, scored by their average stars / 5.
//   - ContentBased: books whose author, category and year match the reader's
//     own highly rated books, with a bonus for books the catalog rates well.
//
// Each scorer returns Candidates in [0,1]. The Engine multiplies them by the
// scorer's weight (0.6 and 0.4 by default), sums per book, joins the reasons,
// sorts by score with a stable sort and truncates to the requested count.
//
// # Exclusions
//
// A book the reader has borrowed or already rated is never recommended.
//
// # Errors
//
// Recommend fails only for an unknown reader (library.ErrReaderNotFound), a
// cancelled context, or a scorer error. A reader with no neighbors or no
// qualifying ratings simply gets fewer, possibly zero, recommendations.
//
// SPDX-License-Identifier: MIT
package recommend
