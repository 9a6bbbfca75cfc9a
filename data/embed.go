// Package data embeds the lexical tables read by interpres.Load.
//
// Every table is a '|'-separated text file; lines starting with '!' are
// comments. See loader.go in the root package for the field layouts.
//
// The tables here are fixture-scale: a few dozen headwords with their stems,
// the regular endings and the attachment lists. A full lexicon in the same
// format is plugged in by passing its fs.FS to interpres.Load.
package data

import "embed"

// FS holds the *.la tables.
//
//go:embed *.la
var FS embed.FS
