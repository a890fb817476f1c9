package dicetale_test

import (
	"fmt"
	"log"

	"github.com/aretw0/dicetale"
	"github.com/aretw0/dicetale/pkg/adapters/corpus"
	"github.com/aretw0/dicetale/pkg/adapters/dice"
)

// ExampleNew_memory demonstrates using the Engine with an in-memory corpus.
// This is useful for tests, embedded scenarios, or when you don't want to
// rely on the file system.
func ExampleNew_memory() {
	// 1. Define the corpus as plain sentences.
	loader := corpus.NewMemoryLoader(
		"the cat sat.",
	)

	// 2. Initialize Dicetale with the custom loader.
	// No file path needed ("demo" is just a label) because we provide a loader.
	engine, err := dicetale.New("demo", dicetale.WithCorpusLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	// 3. Walk a story roll by roll. With one sentence every word has a
	// single successor, so any die face works.
	story, err := engine.NewStory(engine.DefaultStart())
	if err != nil {
		log.Fatal(err)
	}
	for _, roll := range []int{3, 1, 6} {
		if err := engine.Advance(story, roll); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println(story.Sentence())
	fmt.Println(story.Status)
	// Output:
	// The cat sat.
	// complete
}

// ExampleEngine_Preview demonstrates sampling a full story with a seeded
// die. The same seed always produces the same story.
func ExampleEngine_Preview() {
	loader := corpus.NewMemoryLoader("the cat sat.")

	engine, err := dicetale.New("demo", dicetale.WithCorpusLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	story, err := engine.Preview(engine.DefaultStart(), dice.NewPseudoSource(1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(story.Sentence())
	// Output:
	// The cat sat.
}
