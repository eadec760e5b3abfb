// Package stephen is a word-problem engine for finitely presented
// semigroups and monoids: given a presentation (an alphabet and a set of
// rewriting rules) and a word, it decides membership, left-factor, and
// related queries by completing a Schützenberger graph via Stephen's
// procedure, without ever materialising the presented semigroup itself.
//
// Packages:
//
//	letters/      — alphabet, words, shortlex order, string-to-letter coding
//	dtable/       — dense 2-D table, the storage word graphs and their
//	                reverse source chains are built from
//	wgraph/       — deterministic partial word graph with reverse source
//	                chains, node merging and standardisation primitives
//	nodemgr/      — active/free node-id bookkeeping and BFS compaction
//	presentation/ — presentations and inverse presentations over an alphabet
//	paths/        — shortlex path enumeration between two nodes of a graph
//	report/       — structured progress reporting for long-running completions
//	stephen/      — the completion engine itself: definition and
//	                relation-closure rules, coincidence processing,
//	                standardisation, and the Accepts/IsLeftFactor queries
//	internal/config/ — HCL presentation documents decoded into presentation.Presentation
//	cmd/stephen/  — CLI front-end: run, accepts, factor, list
//
//	go get github.com/wordproblem/stephen
package stephen
