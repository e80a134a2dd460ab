// Package matching scores alumni mentors against a student and ranks them.
//
// Everything here is a pure function over values the caller has already
// loaded: no I/O, no shared state, no mutation of the inputs. The score is a
// fixed, explainable formula of four capped sub-scores:
//
//	category overlap     40 * matched / preferred categories
//	interest/skill match 30 * matched / interests
//	domain affinity      20 | 15 | 0 (major x industry lookup)
//	availability         10 | 5 | 0
//
// The total is rounded half-up to an integer in [0, 100].
package matching
