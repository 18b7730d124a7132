// Package catalog assembles the built-in drill registry. Each topic file
// registers a handful of drills that exercise one kata package, print a
// short walkthrough, and verify the properties the exercise is about.
package catalog

import (
	"fmt"

	"github.com/drillab/kata/drill"
)

// NewRegistry returns a registry with every built-in drill registered.
func NewRegistry() *drill.Registry {
	reg := drill.NewRegistry()

	registerCString(reg)
	registerBits(reg)
	registerArrays(reg)
	registerTextOps(reg)
	registerList(reg)
	registerStackQueue(reg)
	registerSearchSort(reg)
	registerWindow(reg)
	registerEmbedded(reg)
	registerGATT(reg)

	return reg
}

// check returns an error describing the violated property, or nil.
func check(cond bool, format string, args ...any) error {
	if !cond {
		return fmt.Errorf(format, args...)
	}

	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
