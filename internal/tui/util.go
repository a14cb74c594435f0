package tui

import "fmt"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// tick formats an axis value to fit a narrow gutter.
func tick(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if len(s) > gutterW-1 {
		s = fmt.Sprintf("%.3g", v)
	}
	return s
}
