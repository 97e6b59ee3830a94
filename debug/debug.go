package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match bool
	Diff  bool
	Visit bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("TAML_DEBUG_MATCH")
	d.Diff = boolEnv("TAML_DEBUG_DIFF")
	d.Visit = boolEnv("TAML_DEBUG_VISIT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Diff() bool {
	return d.Diff
}
func Visit() bool {
	return d.Visit
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
