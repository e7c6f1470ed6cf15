// Package main provides the entry point for the assetext CLI.
//
// assetext reads a table of file-extension size limits and prints views of it
// for build and CI pipelines.
//
// Usage:
//
//	assetext <file_path> <function> [extension]
//
// See --help for all available options.
package main

// main is the entry point for assetext.
func main() {
	Execute()
}
