package fable_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/fable"
	"github.com/aretw0/fable/pkg/adapters/memory"
	"github.com/aretw0/fable/pkg/domain"
)

func ExampleEngine_Process() {
	loader := memory.NewLoader(map[string]string{
		"cave.yaml": `
start: mouth
mouth:
  enter: You stand at the mouth of a cave.
  choices:
    enter:
      target: hall
      text: You step into the dark.
hall:
  enter: Water drips somewhere ahead.
`,
	})

	eng, err := fable.New("", fable.WithLoader(loader))
	if err != nil {
		panic(err)
	}
	ctx := context.Background()

	out, _ := eng.Process(ctx, "cave.yaml")
	fmt.Print(out)

	_, err = eng.Process(ctx, "leave")
	fmt.Println(errors.Is(err, domain.ErrChoiceNotFound))

	out, _ = eng.Process(ctx, "enter")
	fmt.Print(out)

	// Output:
	// You stand at the mouth of a cave.
	// Choices:
	// enter
	// true
	// enter
	// You step into the dark.
	// Water drips somewhere ahead.
	// Choices:
	//
}
