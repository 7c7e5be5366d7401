package main

import (
	"context"

	"github.com/cube2222/vlcompiler/cmd"
)

func main() {
	cmd.Execute(context.Background())
}
