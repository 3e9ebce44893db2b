// Package testsuite runs tests from the github.com/BurntSushi/toml-test
// test suite against this module's own parser instead of a reflection
// decoder, so conformance is checked at the level this module actually
// operates: the document model, not a struct mapping.
package testsuite

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	toml "github.com/go-tomlkit/toml"
)

// Decode is the toml-test binary interface: TOML input is read from
// STDIN and a tagged JSON representation is written to STDOUT.
func Decode() {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("Error reading stdin: %s", err)
	}

	p, result := toml.Parse(string(input))
	if result.Kind() == toml.ResultPartial || result.Kind() == toml.ResultPartialError {
		log.Fatalf("Error decoding TOML: input only partially parsed, remainder: %q", result.Remainder())
	}

	tagged := toml.TaggedDocument(p.Document())

	j := json.NewEncoder(os.Stdout)
	j.SetIndent("", "  ")
	if err := j.Encode(tagged); err != nil {
		log.Fatalf("Error encoding JSON: %s", err)
	}
}

// parser adapts this module's facade to the tomltest.Parser interface so
// the embedded toml-test suite can run directly against it rather than
// through the stdin/stdout binary protocol Decode implements above.
type parser struct{}

func (parser) Decode(data string) (output string, outputIsError bool, err error) {
	p, result := toml.Parse(data)
	if errs := result.Errors(); len(errs) > 0 {
		return errs[0].Error(), true, nil
	}
	if result.Kind() == toml.ResultPartial || result.Kind() == toml.ResultPartialError {
		return fmt.Sprintf("input only partially parsed, remainder: %q", result.Remainder()), true, nil
	}
	b, jerr := json.Marshal(toml.TaggedDocument(p.Document()))
	if jerr != nil {
		return "", false, jerr
	}
	return string(b), false, nil
}

func (parser) Encode(string) (string, bool, error) {
	return "", true, fmt.Errorf("encoding from tagged JSON is not supported by this parser")
}
