package http

import (
	xutil "FundLens/pkg/util"
)

// ParseIntDefault parses a query value as an int, or returns def.
func ParseIntDefault(s string, def int) int { return xutil.ParseIntDefault(s, def) }
