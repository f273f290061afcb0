// Package prevcast is an in-memory engine for projecting the prevalence
// of a chronic condition (Type-1 diabetes) over age and calendar time
// under an illness-death Markov cohort model, plus the policy levers and
// reporting utilities built around it.
//
// 🚀 What is prevcast?
//
//	A deterministic, batch-oriented library that brings together:
//		• Age grids: year×age rate/state matrices & year×age×onset-age tensors
//		• Full engine: S/P/D forward recurrence with half-cycle correction
//		• Incidence-level engine: counts-based variant for ghost-population work
//		• Input builder: long-format tables → rate matrices, sensitivity
//		  toggles, growth extrapolation, historical back-fill
//		• Levers: diagnosis / basic care / best care / cure counterfactuals
//		• Cohort reporting: onset-year reshaping, long-format summaries,
//		  population-weighted country aggregation
//
// ✨ Why choose prevcast?
//
//   - Deterministic – a run either completes or fails a pre/postcondition
//   - Conservative – S+P+D is conserved to machine precision every step
//   - Pure Go – dense flat buffers, whole-row arithmetic via gonum/floats
//   - Honest failures – sentinel errors, no partial results, no retries
//
// Under the hood, everything is organized under five subpackages:
//
//	agegrid/      — year×age Grid, onset-age Tensor, the shift primitive
//	illnessdeath/ — the two simulation engines and their result bundles
//	inputs/       — long-format pivoting, sensitivity scenarios, back-fill
//	lever/        — policy-lever and SMR-target input transforms
//	cohort/       — reshaping, summaries, weighted-median aggregation
//
// Quick sketch of the model:
//
//	    S ──i──▶ P
//	    │        │
//	    qB     qT1D
//	    ▼        ▼
//	    D ◀──────┘
//
//	three macro-states, age- and time-varying transition rates.
//
// Dive into README.md and the per-package doc.go files for the exact
// recurrences, invariants and worked examples.
//
//	go get github.com/prevlab/prevcast
package prevcast
