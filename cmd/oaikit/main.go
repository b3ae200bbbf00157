// Command oaikit sends text, chat and image requests from the command line.
//
//	oaikit complete "Say hi"
//	oaikit chat --system "be brief" "What is Go?"
//	oaikit image --size LARGE "a cat in a box"
//	oaikit send chat preset.json
//	oaikit models chat
//	oaikit auth set --api-key sk-...
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "oaikit:", err)
		os.Exit(1)
	}
}
