// Package lever produces counterfactual input-matrix sets for policy
// interventions: the four cumulative "levers" (full diagnosis, basic
// care, best care, cure) and the explicit SMR-target variant.
//
// 🚀 What is a lever?
//
//	A named, ordinal intervention applied to the rate inputs before
//	re-running the engine:
//	  1. FullDiagnosis — nobody dies undiagnosed: dDx zeroed and
//	     incidence grossed up to the pre-diagnosis-death level
//	  2. BasicCare    — + non-minimal-care mortality rescaled into the
//	     basic-care SMR band (never worsening) and all care moved to
//	     the non-minimal stratum
//	  3. BestCare     — + a tighter SMR band
//	  4. Cure         — + both strata forced to background mortality:
//	     no excess mortality at all
//
//	Each level includes every lower level. Levers are active over a
//	calendar-year range and never mutate the baseline set — a transform
//	always returns a fresh MatrixSet, so baseline and counterfactual
//	runs can be compared cell for cell.
//
// ✨ Guarantees:
//   - Monotone: successive levels never increase disease mortality in
//     the active range.
//   - Idempotent no-op: level None (or an empty active range) returns
//     the baseline values unchanged.
//
// ⚙️ Usage:
//
//	cf, err := lever.Apply(base, lever.BestCare, 2025, 2040)
//	if err != nil { ... }
//	res, err := illnessdeath.Run(cf.EngineInputs(), opts)
package lever
