package main

import (
	"context"
	"log"

	"github.com/ekpss/quizapp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("❌ quizapp failed: %v", err)
	}
}
