package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/nairv/tripsplit"
	"github.com/nairv/tripsplit/agent"
	"github.com/nairv/tripsplit/renderer"
	"google.golang.org/genai"
)

type assistCmd struct {
	audio string
	text  string
	yes   bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "add a bill from a spoken or written description" }
func (*assistCmd) Usage() string {
	return `tsp assist [-audio <file> | -text <description>] [-yes]

  Turns a description of a bill into a pre-filled draft: the audio file is
  transcribed, the transcript goes to the extraction model, and the
  resulting bill is shown for confirmation before anything is written.
  With -text the transcription step is skipped. Nothing touches the ledger
  until you confirm.

  The transcription key comes from 'tsp key'; the extraction model uses the
  standard Gemini environment credentials.

Usage Examples:
$ tsp assist -audio dinner.webm
$ tsp assist -text "Bob paid 8500 rupees for dinner, split 50 30 20"

`
}

func (p *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.audio, "audio", "", "Path to the recorded audio file.")
	f.StringVar(&p.text, "text", "", "A written bill description, skipping transcription.")
	f.BoolVar(&p.yes, "yes", false, "Commit the bill without asking for confirmation.")
}

func (p *assistCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (p.audio == "") == (p.text == "") {
		fmt.Fprintln(os.Stderr, "Exactly one of -audio or -text is required.")
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	trip, err := DecodeTrip()
	if err != nil {
		return fail(err)
	}

	intake := tripsplit.NewIntake(trip)

	if p.audio != "" {
		key, ok, err := tripsplit.LoadAPIKey(store)
		if err != nil {
			return fail(err)
		}
		if !ok {
			return fail(fmt.Errorf("no transcription key stored, set one with 'tsp key -set <key>'"))
		}
		f, err := os.Open(p.audio)
		if err != nil {
			return fail(fmt.Errorf("could not open audio file: %v", err))
		}
		defer f.Close()

		if err := intake.Transcribe(ctx, tripsplit.NewWhisperClient(key), f, filepath.Base(p.audio)); err != nil {
			return fail(err)
		}
		fmt.Printf("Heard: %s\n", intake.Transcript())
	} else {
		if err := intake.SetTranscript(p.text); err != nil {
			return fail(err)
		}
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("could not initialize the extraction model: %v", err))
	}
	extractor := agent.NewExtractor()
	if err := extractor.Start(ctx, client); err != nil {
		return fail(err)
	}

	if err := intake.Extract(ctx, extractor); err != nil {
		return fail(err)
	}
	bill, err := intake.Validate()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.BillMarkdown(trip, bill))

	if !p.yes && !confirm("Add this bill?") {
		intake.Cancel()
		fmt.Println("Bill discarded, the ledger is unchanged.")
		return subcommands.ExitSuccess
	}

	if _, err := intake.Commit(); err != nil {
		return fail(err)
	}
	if err := EncodeTrip(trip); err != nil {
		return fail(err)
	}
	fmt.Printf("Bill added, the trip now has %d bills.\n", len(trip.Bills))
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the terminal.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
