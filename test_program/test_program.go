package main

import (
	"io"
	"os"

	toml "github.com/go-tomlkit/toml"
)

func main() {
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		os.Exit(2)
	}
	_, result := toml.Parse(string(bytes))
	switch result.Kind() {
	case toml.ResultFull, toml.ResultFullError:
		os.Exit(0)
	default:
		os.Exit(1)
	}
}
