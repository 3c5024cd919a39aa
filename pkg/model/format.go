package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one of the supported parser variants
type Format int

const (
	FormatUnknown Format = iota
	FormatOBJ
	FormatASCIISTL
	FormatBinarySTL
)

func (f Format) String() string {
	switch f {
	case FormatOBJ:
		return "obj"
	case FormatASCIISTL:
		return "ascii-stl"
	case FormatBinarySTL:
		return "binary-stl"
	}
	return "unknown"
}

// Hint is the caller's guess of the file type, usually derived from the
// upload's file extension
type Hint string

const (
	HintNone Hint = ""
	HintOBJ  Hint = "obj"
	HintSTL  Hint = "stl"
)

// ParseHint normalizes a user supplied hint. Case and a leading dot are
// ignored; "", "auto" and "none" mean no hint
func ParseHint(s string) (Hint, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "", "auto", "none":
		return HintNone, nil
	case "obj":
		return HintOBJ, nil
	case "stl":
		return HintSTL, nil
	}
	return HintNone, fmt.Errorf("unknown format hint %q (expected obj or stl)", s)
}

// HintFromPath derives a hint from a file extension. Unknown extensions
// yield HintNone
func HintFromPath(path string) Hint {
	h, err := ParseHint(filepath.Ext(path))
	if err != nil {
		return HintNone
	}
	return h
}

// Candidates returns the parsers tried for a hint, in order. ASCII parsing
// always precedes binary STL since the binary decoder accepts almost any
// byte sequence of the right length
func Candidates(hint Hint) []Format {
	switch hint {
	case HintOBJ:
		return []Format{FormatOBJ}
	case HintSTL:
		return []Format{FormatASCIISTL, FormatBinarySTL}
	}
	return []Format{FormatOBJ, FormatASCIISTL, FormatBinarySTL}
}
