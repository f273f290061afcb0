// Package inputs builds engine-ready rate matrices from long-format
// demographic/clinical tables and applies sensitivity scenarios to them.
//
// 🚀 What does inputs do?
//
//	The data-preparation front of prevcast:
//	  • Pivot long-format rows (one per year×age×variable) into dense
//	    year×age grids, with a baseline table filling missing cells
//	  • Apply sensitivity toggles: pediatric incidence ±10%/±25%,
//	    SMR ±10%, diagnosis-rate shift — each an explicit field on a
//	    Sensitivity configuration object, never a process-wide flag
//	  • Extrapolate rates past a cutoff year by a 10-year trailing
//	    average year-over-year growth ratio (or an explicit override)
//	  • Back-fill a constant historical prefix down to the model's
//	    historical floor year so the warm-up range has no gaps
//	  • Clamp the death-on-diagnosis rate below 1 so the engine's
//	    i/(1−dDx) term stays finite
//
// ⚙️ Usage:
//
//	set, err := inputs.Build(rows, baseline, inputs.Sensitivity{})
//	if err != nil { ... }
//	set, err = set.Backfill(inputs.HistoryFloor)
//	res, err := illnessdeath.Run(set.EngineInputs(), opts)
//
// The builder never mutates its arguments; every transform returns a
// new MatrixSet or Grid.
package inputs
