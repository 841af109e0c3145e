// huewheel - colour harmony palettes from a single base hue
//
// huewheel computes complementary, analogous, triadic, split-complementary
// and tetradic harmonies and prints them as OKLCH or HSL CSS colours.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/huewheel/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
