/*
Package runner implements the line-oriented presentation loop for the Fable engine.

It acts as the bridge between the interpreter and the outside world: it buffers
input until a line terminator, feeds each completed line to the engine exactly
once, prints the narrative text it returns, and turns diagnostics into short
system messages while logging the full error.

# Usage

	eng, _ := fable.New("./assets")
	r := runner.New(
		runner.WithInput(os.Stdin),
		runner.WithOutput(os.Stdout),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx, eng); err != nil {
		log.Fatal(err)
	}
*/
package runner
