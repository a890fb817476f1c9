package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Dicetale.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Warm table-top gradient (amber to red)
	s1 := termenv.String(" ____  _          _        _      ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("|  _ \\(_) ___ ___| |_ __ _| | ___ ").Foreground(p.Color("#f59e0b"))
	s3 := termenv.String("| | | | |/ __/ _ \\ __/ _` | |/ _ \\").Foreground(p.Color("#f97316"))
	s4 := termenv.String("| |_| | | (_|  __/ || (_| | |  __/").Foreground(p.Color("#ef4444"))
	s5 := termenv.String("|____/|_|\\___\\___|\\__\\__,_|_|\\___|").Foreground(p.Color("#dc2626"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	if v := strings.TrimSpace(version); v != "" {
		fmt.Println(termenv.String("  roll dice, tell stories  ·  v" + v).Foreground(p.Color("#9ca3af")))
	}
	fmt.Println()
}
