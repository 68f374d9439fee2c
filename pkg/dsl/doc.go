/*
Package dsl provides a fluent Go API for writing stories in code.

Stories built this way are rendered to the same YAML format the interpreter
reads from disk, so they exercise exactly the same parsing path.

	loader, err := dsl.New().
		Start("mouth").
		Add("mouth").Enter("You stand at the mouth of a cave.").
		Choice("enter", "hall", "You step into the dark.").
		Add("hall").Enter("Water drips somewhere ahead.").
		Loader("cave.yaml")
*/
package dsl
