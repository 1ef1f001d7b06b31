package printer

import (
	"fmt"

	"github.com/inkrune/printcore/pkg/printitems"
	"github.com/inkrune/printcore/pkg/printer/stablehash"
)

// CheckIdempotent formats root, then re-formats the result through build
// (the caller's IR-generation step for its own language, out of scope
// here), and reports an error naming both hashes if the two outputs are not
// byte-identical. A formatter whose own output, fed back through itself,
// produces different output is broken regardless of whether either
// individual run looked fine.
func CheckIdempotent(root *printitems.List, cfg Config, build func(formatted string) (*printitems.List, error)) error {
	first, err := Print(root, cfg)
	if err != nil {
		return fmt.Errorf("stablehash: first print failed: %w", err)
	}

	again, err := build(first)
	if err != nil {
		return fmt.Errorf("stablehash: rebuilding IR from first output failed: %w", err)
	}

	second, err := Print(again, cfg)
	if err != nil {
		return fmt.Errorf("stablehash: second print failed: %w", err)
	}

	if !stablehash.Equal(first, second) {
		return fmt.Errorf("stablehash: formatting is not idempotent (hash %s != %s)", stablehash.Sum(first), stablehash.Sum(second))
	}
	return nil
}
