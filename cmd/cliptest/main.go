//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/zhubert/switchboard/internal/clipboard"
)

func main() {
	text := "switchboard clipboard check"
	if len(os.Args) > 1 {
		text = os.Args[1]
	}

	fmt.Println("Writing to clipboard...")
	if err := clipboard.WriteText(text); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	got, err := clipboard.ReadText()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if got != text {
		fmt.Printf("Mismatch: wrote %q, read %q\n", text, got)
		return
	}
	fmt.Printf("Round trip ok: %d bytes\n", len(got))
}
