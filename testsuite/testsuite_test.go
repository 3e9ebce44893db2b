package testsuite

import (
	"testing"

	tomltest "github.com/BurntSushi/toml-test"
)

func TestTomlTestSuite(t *testing.T) {
	r := tomltest.Runner{
		Files:   tomltest.EmbeddedTests(),
		Encoder: false,
		Parser:  parser{},
		SkipTests: []string{
			// Encoding round-trips are not supported (Encode is a stub);
			// only decode-direction tests are run.
		},
	}

	tests, err := r.Run()
	if err != nil {
		t.Fatal(err)
	}

	for _, test := range tests.Tests {
		t.Run(test.Path, func(t *testing.T) {
			if test.Failed() {
				t.Fatalf("\nError:\n%s\n\nInput:\n%s\nOutput:\n%s\nWant:\n%s\n",
					test.Failure, test.Input, test.Output, test.Want)
			}
		})
	}
	t.Logf("passed: %d; failed: %d; skipped: %d", tests.Passed, tests.Failed, tests.Skipped)
}
