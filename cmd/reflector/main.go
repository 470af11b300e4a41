package main

import (
	"context"
	"fmt"
	"os"

	"reflector/internal/app"
	_ "reflector/internal/lens"
	_ "reflector/internal/platform"
)

func main() {
	if err := app.New().Command().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
