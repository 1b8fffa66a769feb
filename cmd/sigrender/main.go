// Command sigrender replays recorded signature strokes and captures the
// rendered result as an image.
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sigrender: %v\n", err)
		os.Exit(1)
	}
}
