package logs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cube2222/vlcompiler/config"
)

var Output *os.File

// InitializeFileLogger redirects the standard logger to ~/.vlcompiler/logs.txt, so that warnings don't mix with compiler output.
func InitializeFileLogger() {
	path := filepath.Join(config.VLCompilerHomeDir, "logs.txt")
	if err := os.MkdirAll(config.VLCompilerHomeDir, 0755); err != nil {
		log.Fatalf("couldn't create ~/.vlcompiler home directory: %s", err)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("couldn't create logs file: %s", err)
	}
	Output = f
	log.SetOutput(Output)
}

func CloseLogger() {
	if Output == nil {
		return
	}
	log.SetOutput(os.Stderr)
	Output.Close()
	Output = nil
}
