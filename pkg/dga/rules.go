package dga

import "github.com/gridsentry/dgaportal/pkg/ternary"

// The classifiers below are ordered rule chains: each rule pairs a
// boundary predicate with the verdict it selects, rules are evaluated
// top to bottom, and the first match wins. The boundaries are not
// disjoint, so declaration order is the tie-break policy and must not be
// reordered or collapsed into an unordered lookup.

// triangleRule is a predicate over normalized percentage shares.
type triangleRule struct {
	match func(ternary.Triple) bool
	verdict
}

// readingRule is a predicate over absolute concentrations in ppm.
type readingRule struct {
	match func(Reading) bool
	verdict
}

// matchTriangle returns the verdict of the first matching rule.
func matchTriangle(rules []triangleRule, p ternary.Triple) (verdict, bool) {
	for _, ru := range rules {
		if ru.match(p) {
			return ru.verdict, true
		}
	}
	return verdict{}, false
}

// matchReading returns the verdict of the first matching rule.
func matchReading(rules []readingRule, r Reading) (verdict, bool) {
	for _, ru := range rules {
		if ru.match(r) {
			return ru.verdict, true
		}
	}
	return verdict{}, false
}
