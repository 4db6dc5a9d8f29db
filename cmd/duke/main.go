package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	app := NewApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}
