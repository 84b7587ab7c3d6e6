// Package main hosts the subweave CLI entrypoint and command graph.
//
// The Cobra-based command tree groups caption cues, aligns word-level tracks
// onto caption tracks, converts json3 caption payloads, and runs configured
// batches. It centralizes configuration resolution and logging setup so
// subcommands only translate flags into workflow calls and render summaries.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
