//go:build js && wasm

// Command wasm exposes the planner to the browser via WebAssembly.
// After loading, it registers a global JavaScript function:
//
//	runPlan(jsonString) -> jsonString
//
// The input and output are JSON-encoded PlanInput and PlanLog respectively,
// the same contract the plan command uses.
package main

import (
	"syscall/js"

	"github.com/Marius-Juston/Robot-Planning/internal/config"
	"github.com/Marius-Juston/Robot-Planning/internal/engine"
	"github.com/Marius-Juston/Robot-Planning/internal/observability"
)

func main() {
	observability.InitializeLogger(config.NewDefaultConfig().Logger)
	js.Global().Set("runPlan", js.FuncOf(runPlan))
	select {} // keep the module alive until the page is closed
}

func runPlan(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := engine.RunJSON(args[0].String())
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}
