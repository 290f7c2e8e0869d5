// Package vs runs the same naive fib workload as the root package, but
// compiled to WebAssembly and executed across runtimes, to keep the pure-Go
// numbers in context.
package vs

import (
	"context"
	_ "embed"
	"errors"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// fibWasm is assembled from testdata/fib.wat
//go:embed testdata/fib.wasm
var fibWasm []byte

// newWazeroFibBench returns a runtime and its fib function readied with the
// given engine configuration.
// Note: the runtime should be closed.
func newWazeroFibBench(ctx context.Context, config wazero.RuntimeConfig) (wazero.Runtime, api.Function, error) {
	r := wazero.NewRuntimeWithConfig(ctx, config)

	mod, err := r.Instantiate(ctx, fibWasm)
	if err != nil {
		_ = r.Close(ctx)
		return nil, nil, err
	}

	fn := mod.ExportedFunction("fib")
	if fn == nil {
		_ = r.Close(ctx)
		return nil, nil, errors.New("fib is not an exported function")
	}
	return r, fn, nil
}
