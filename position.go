// Position support for the TOML core.

package toml

import "github.com/go-tomlkit/toml/token"

// Position identifies a 1-based line/column location within a parsed
// document. Column numbers are tracked honestly; unlike some historical
// TOML parsers this one never pins Column to 0 (see DESIGN.md).
type Position = token.Position
