// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

// Command buddy-demo replays the allocate/free scenario from the original
// buddy allocator this module's core algorithm was modeled on: allocate
// 200, 200, and 1000 bytes, then free the middle allocation, the first,
// and finally the third, printing the free list after every step.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gobuddy/allocator"
	"github.com/gobuddy/allocator/region"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	providerName := flag.String("provider", "heap", "region provider to use: heap or mmap")
	flag.Parse()

	p, err := region.Create(*providerName)
	if err != nil {
		return fmt.Errorf("region.Create(%q): %w", *providerName, err)
	}

	a := buddy.New(buddy.WithProvider(p))

	fmt.Println("=== Buddy Allocator Demo ===")
	fmt.Printf("provider: %s\n\n", *providerName)

	ptr0, err := a.Allocate(200)
	if err != nil {
		return fmt.Errorf("allocate(200): %w", err)
	}
	traverse(a, "after allocate(200) -> ptr0")

	ptr1, err := a.Allocate(200)
	if err != nil {
		return fmt.Errorf("allocate(200): %w", err)
	}
	traverse(a, "after allocate(200) -> ptr1")

	ptr2, err := a.Allocate(1000)
	if err != nil {
		return fmt.Errorf("allocate(1000): %w", err)
	}
	traverse(a, "after allocate(1000) -> ptr2")

	a.Free(ptr1)
	traverse(a, "after free(ptr1)")

	a.Free(ptr0)
	traverse(a, "after free(ptr0)")

	a.Free(ptr2)
	traverse(a, "after free(ptr2)")

	return nil
}

func traverse(a *buddy.Allocator, label string) {
	fmt.Printf("-- %s --\n", label)
	for _, b := range a.Traverse() {
		fmt.Printf("  addr=%#x size=%d\n", b.Addr, b.Size)
	}
	fmt.Println()
}
