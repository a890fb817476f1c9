package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/aretw0/dicetale"
	"github.com/aretw0/dicetale/internal/presentation/table"
	"github.com/aretw0/dicetale/internal/presentation/tui"
	"github.com/aretw0/dicetale/pkg/domain"
)

// PlayOptions configures the interactive classroom session.
type PlayOptions struct {
	RepoPath string
	Start    string
	MaxWords int
	Debug    bool
}

// RunPlay drives a story with physical dice: the player rolls a real die
// and types the face, the table row for the current word decides the next.
func RunPlay(opts PlayOptions) error {
	engine, err := newEngine(opts.RepoPath, opts.Debug, opts.MaxWords)
	if err != nil {
		return err
	}
	printWarnings(engine.Warnings())

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		tui.PrintBanner(dicetale.Version)
	}

	start := resolveStart(engine, opts.Start)
	story, err := engine.NewStory(start)
	if err != nil {
		return fmt.Errorf("start word: %w", err)
	}

	render := tui.NewRenderer()
	reader := bufio.NewReader(os.Stdin)

	for story.Status == domain.StatusAwaitingRoll {
		entries, err := engine.Model().Get(story.Current)
		if err != nil {
			return err
		}

		md := table.RenderWord(domain.WordTransitions{Word: story.Current, Entries: entries})
		if out, rerr := render(md); rerr == nil {
			fmt.Print(out)
		} else {
			fmt.Print(md)
		}

		fmt.Printf("story so far: %s\n", joinWords(story.Words))
		fmt.Print("roll> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "exit" || input == "quit" {
			fmt.Println("Bye!")
			return nil
		}

		roll, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("Type the face you rolled (1-6), or 'quit'.")
			continue
		}

		if err := engine.Advance(story, roll); err != nil {
			if errors.Is(err, domain.ErrInvalidRoll) {
				fmt.Println("That die only has six faces. Try 1-6.")
				continue
			}
			return err
		}
	}

	fmt.Printf("\nYour story: %s\n", story.Sentence())
	if story.Stop == domain.StopMaxLength {
		fmt.Printf("(cut off at %d words before reaching END)\n", engine.MaxStoryLength())
	}
	return nil
}

func joinWords(words []domain.Token) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, string(w))
	}
	return strings.Join(parts, " ")
}
