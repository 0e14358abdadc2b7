package main

import (
	"os"

	"horse.fit/fusiontranslate/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
