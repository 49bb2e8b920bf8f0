package main

import (
	"github.com/babmate/core/internal/app"
	"github.com/babmate/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
