// Package rule enumerates the inference rules of the natural-deduction
// calculus and the proof-size metric used by the search engine.
package rule
