// Package proof defines the proof tree produced by the search engine: a
// recursive record of one rule application per node, optionally binding
// a discharged assumption, with ordered subproof children.
package proof
