package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/speech"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a speaking prompt and a Band 9 sample answer",
	Long: `Print the prompt for one part of the speaking test, optionally read it
aloud, then generate a Band 9 sample answer with the configured model.`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().IntP("part", "p", 1, "Speaking part: 1, 2 or 3")
	sampleCmd.Flags().Bool("speak", false, "Read the prompt aloud before generating the answer")
	sampleCmd.Flags().Bool("no-answer", false, "Only show (or speak) the prompt")
}

func runSample(cmd *cobra.Command, args []string) error {
	partVal, _ := cmd.Flags().GetInt("part")
	speak, _ := cmd.Flags().GetBool("speak")
	noAnswer, _ := cmd.Flags().GetBool("no-answer")

	part, err := speaking.ParsePart(strconv.Itoa(partVal))
	if err != nil {
		return err
	}
	prompt, _ := speaking.PromptFor(part)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n\n%s\n\n", part, prompt.PromptTopic(), speaking.Text(prompt))

	if !speak && noAnswer {
		return nil
	}

	svc, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	if speak {
		pb := speech.New(svc.cfg.Speech, svc.store.EventRepo())
		fmt.Fprintln(out, "Speaking...")
		if err := pb.Speak(cmd.Context(), speaking.Text(prompt)); err != nil {
			// Playback problems should not stop the answer from being shown.
			fmt.Fprintln(cmd.ErrOrStderr(), speech.UserMessage(err))
		}
	}
	if noAnswer {
		return nil
	}

	fmt.Fprintln(out, "Generating a Band 9 sample answer...")
	answer, err := svc.speaking.SampleAnswer(cmd.Context(), prompt)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSample Answer\n\n%s\n", answer)
	return nil
}
