// Command zippy-inflate decodes a raw DEFLATE stream (no zlib or gzip
// framing) from stdin and writes the decompressed bytes to stdout. It is a
// thin wrapper for manual testing and conformance checks; no decoding
// logic lives here — it all lives in package zippy.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/centurysys/zippy"
)

var verbose = flag.Bool("v", false, "log the decoded output length to stderr")

func main() {
	flag.Parse()

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("zippy-inflate: reading stdin: %v", err)
	}

	out, err := zippy.Inflate(src)
	if err != nil {
		log.Fatalf("zippy-inflate: %v", err)
	}

	if *verbose {
		log.Printf("zippy-inflate: decoded %d bytes from %d bytes of input", len(out), len(src))
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("zippy-inflate: writing stdout: %v", err)
	}
}
