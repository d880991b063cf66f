// Package foodweb is an in-memory toolkit for loading, analyzing, and
// stress-testing trophic networks — from core prey→predator primitives to
// extinction cascades, attack curves and batch reporting.
//
// 🚀 What is foodweb?
//
//	A thread-safe library plus CLI that brings together:
//		• Core primitives: species & trophic links, mutated safely under locks
//		• GraphML I/O: load field data, save cleaned webs
//		• Cleaning: duplicate-link removal that preserves first observations
//		• Traversal: BFS reachability over prey→predator links
//		• Cascades: primary removals with iterative secondary extinctions
//		• Ranking: per-species vulnerability (cascade size, diet loss)
//		• Centrality: degree profiles of the intact web
//		• Attacks: random and targeted removal curves with robustness R₅₀
//		• Reports: ranking CSV, curve CSV, human-readable summaries
//
// ✨ Why foodweb?
//
//   - Deterministic – fixed seeds and lexicographic scans ⇒ identical output
//   - Rock-solid guarantees – R/W locks, sentinel errors, no panics
//   - Pure Go – the SQLite driver included, no cgo anywhere
//   - Batteries included – Prometheus metrics, YAML config, watch mode
//
// Everything is organized under focused subpackages:
//
//	core/       — Graph, Edge, status-free topology with adjacency indexes
//	graphio/    — GraphML decoding & encoding
//	clean/      — duplicate-link cleanup
//	bfs/        — breadth-first reachability
//	cascade/    — the extinction-cascade engine
//	rank/       — vulnerability ranking across all species
//	centrality/ — degree centrality profiles
//	attack/     — random & targeted removal scenarios
//	report/     — CSV and text report writers
//	webgen/     — synthetic food webs for tests and benchmarks
//	cmd/foodweb — the batch/watch command-line pipeline
//
// Quick ASCII example:
//
//	    kelp ──► urchin ──► otter
//	      └────► abalone ──┘
//
//	a four-species web where kelp is basal; removing it starves everything.
//
// Dive into README.md for the pipeline walkthrough and report formats.
//
//	go get github.com/trophiclab/foodweb
package foodweb
