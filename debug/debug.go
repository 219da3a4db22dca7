package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Classify bool
	Parse    bool
	Query    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Classify = boolEnv("TOON_DEBUG_CLASSIFY")
	d.Parse = boolEnv("TOON_DEBUG_PARSE")
	d.Query = boolEnv("TOON_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Classify() bool {
	return d.Classify
}
func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}
