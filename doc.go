/*
Package fable is an interpreter for declarative, choice-driven text adventures.

A story is a YAML document: a reserved "start" key names the first node, and
every other top-level key is a node with optional "enter" text and a "choices"
mapping of labels to a "target" node and the "text" shown when taken.

	start: cave
	cave:
	  enter: You stand at the mouth of a cave.
	  choices:
	    go:
	      target: hall
	      text: You step into the dark.
	hall:
	  enter: Water drips somewhere ahead.

# Concept

The Engine is a two-state machine. In Load mode each input names a story
document, resolved against the assets directory; a successful load switches to
Play mode and returns the start node's text. In Play mode each input is a
choice label of the current node. Every call returns the text to display and,
on failure, a diagnostic error the caller logs; failures never change the
session.

# Usage

	eng, err := fable.New("./assets")
	if err != nil {
		log.Fatal(err)
	}

	out, err := eng.Process(ctx, "cave.yaml")
	if err != nil {
		log.Printf("load failed: %v", err)
	}
	fmt.Print(out)

	out, err = eng.Process(ctx, "go")
	if errors.Is(err, domain.ErrChoiceNotFound) {
		// The player typed something else; the cursor did not move.
	}
*/
package fable
