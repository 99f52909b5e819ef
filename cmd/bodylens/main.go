package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodylens/bodylens/internal/editor"
	"github.com/bodylens/bodylens/internal/ui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: bodylens <file | ->")
		fmt.Println("\nbodylens - content-aware viewer for HTTP message bodies")
		fmt.Println("Pass a file with a raw body, or - to read it from stdin")
		os.Exit(1)
	}

	source := os.Args[1]
	body, err := readBody(source)
	if err != nil {
		log.Fatalf("Error reading body: %v", err)
	}
	if source == "-" {
		source = "stdin"
	}

	ed := editor.New(editor.NewMemoryBuffer(true))
	ed.SetBody(body)

	app := ui.NewApplication(ed, source)
	if err := app.Run(); err != nil {
		log.Fatalf("Error running application: %v", err)
	}
}

func readBody(source string) ([]byte, error) {
	if source == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(source)
}
