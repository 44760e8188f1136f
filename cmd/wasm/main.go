//go:build js && wasm

package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/drawdeck/drawdeck/engine-go/internal/config"
	"github.com/drawdeck/drawdeck/engine-go/internal/engine"
)

var eng *engine.Engine

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config, using defaults", "error", err)
		eng = engine.NewEngine()
	} else {
		eng = engine.NewEngineFromConfig(cfg)
	}

	// Create the engine API object
	drawdeckEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	drawdeckEngine.Set("loadDocument", js.FuncOf(loadDocument))
	drawdeckEngine.Set("updateDocument", js.FuncOf(updateDocument))
	drawdeckEngine.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	drawdeckEngine.Set("setCamera", js.FuncOf(setCamera))
	drawdeckEngine.Set("setRenderSurface", js.FuncOf(setRenderSurface))
	drawdeckEngine.Set("setSelection", js.FuncOf(setSelection))

	// --- Queries (frontend ← backend) ---
	drawdeckEngine.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	drawdeckEngine.Set("getWorldExtent", js.FuncOf(getWorldExtent))
	drawdeckEngine.Set("renderOverview", js.FuncOf(renderOverview))

	// --- Overview pointer events ---
	drawdeckEngine.Set("pointerDown", js.FuncOf(pointerDown))
	drawdeckEngine.Set("pointerMove", js.FuncOf(pointerMove))
	drawdeckEngine.Set("pointerUp", js.FuncOf(pointerUp))
	drawdeckEngine.Set("pointerLeave", js.FuncOf(pointerLeave))

	// Register on global scope
	js.Global().Set("drawdeckEngine", drawdeckEngine)

	// Signal that WASM is ready
	js.Global().Set("drawdeckWasmReady", js.ValueOf(true))
	slog.Info("drawdeck engine ready")

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}

	jsonData := args[0].String()
	if err := eng.LoadDocument(jsonData); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	return js.ValueOf(map[string]interface{}{"ok": true})
}

func updateDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing document JSON"})
	}

	jsonData := args[0].String()
	if err := eng.UpdateDocument(jsonData); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	boardID := "board_sample"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		boardID = args[0].String()
	}

	eng.LoadSampleDocument(boardID)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setCamera(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	eng.SetCamera(args[0].Float(), args[1].Float(), args[2].Float())
	return nil
}

func setRenderSurface(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.SetRenderSurface(args[0].Float(), args[1].Float())
	return nil
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		eng.SetSelection(nil)
		return nil
	}

	arr := args[0]
	ids := make([]string, 0, arr.Length())
	for i := 0; i < arr.Length(); i++ {
		ids = append(ids, arr.Index(i).String())
	}
	eng.SetSelection(ids)
	return nil
}

// --- Query Handlers ---

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetSelectionBounds())
}

func getWorldExtent(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.GetWorldExtent())
}

func renderOverview(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.RenderOverview())
}

// --- Pointer Handlers ---

func pointerDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.PointerDown(args[0].Float(), args[1].Float())
	return nil
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	return js.ValueOf(eng.PointerMove(args[0].Float(), args[1].Float()))
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	return js.ValueOf(eng.PointerUp(args[0].Float(), args[1].Float()))
}

func pointerLeave(this js.Value, args []js.Value) interface{} {
	eng.PointerLeave()
	return nil
}
