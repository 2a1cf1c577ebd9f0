//go:build mage

// Package main provides build targets for hypersurface using Mage.
//
// Usage:
//
//	mage build   Compile the hypersurface binary to bin/
//	mage test    Run all tests
//	mage bench   Run the benchmarks of the core packages
//	mage lint    Run golangci-lint
//	mage clean   Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "hypersurface"
	binaryDir  = "bin"
	cmdDir     = "./cmd/hypersurface"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the hypersurface binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Bench runs the benchmarks of the core packages, no unit tests.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem",
		"./combin/...", "./skeleton/...", "./adjacency/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Check runs lint and tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
