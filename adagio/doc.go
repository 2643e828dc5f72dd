// Package adagio ranks agents with ADAGIO (Douglas et al., 2017).
//
// ADAGIO turns the interaction matrix into a weighted dominance digraph,
// breaks every cycle by deleting the weakest edges of the largest strongly
// connected component, and ranks the resulting acyclic graph. Unlike score
// based rankings it does not assume the hierarchy is a total order: the
// Top and Bottom modes place mutually unordered agents on the same level.
//
// Graph construction uses core.Graph; components and orders come from
// package dfs.
package adagio
