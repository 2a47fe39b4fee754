// Package gen generates the Erviz launcher script tree.
//
// A launcher is a tiny cmd or sh script that sets a few environment
// variables and delegates to the bundled converter. One launcher exists per
// combination of language, dialect, input type, output type and, for text
// input, notation.
//
// # Pipeline
//
//	axis.Set
//	   ↓  Enumerate / Requests    (dot→dot excluded, notation only for text)
//	Request
//	   ↓  Path                    ({lang}-{platform}/{in}2{out}[-{notation}].{ext})
//	   ↓  ResolveConfig           (notation, output type, font, dialect flags)
//	ScriptConfig
//	   ↓  Dialect.Render / Encode (template, encoding, line endings)
//	file on disk
//
// Before the first script of a (language, dialect) pair is written, Clean
// removes the scripts a previous run left in the pair's directory.
//
// # Usage
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./dist"),
//	    gen.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	g := gen.NewGenerator(cfg).WithDialect(shell.Dialects()...)
//	if err := g.Generate(ctx); err != nil {
//	    // err joins every failed script; the others were written.
//	}
//
// # Error Handling
//
//   - axis.UnknownValueError: an axis value outside its closed set
//   - ConfigError: invalid option
//   - GenerationError: a script or directory that could not be produced,
//     with the phase (resolve, clean, render, encode, write) it failed in
package gen
