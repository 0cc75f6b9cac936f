package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"tripplanner/internal/services"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the personality quiz in the terminal and print the scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewPersonalityService(nil, zap.NewNop())
		return runQuiz(svc, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runQuiz(svc services.PersonalityServiceInterface, in io.Reader, out io.Writer) error {
	quiz := svc.Quiz()
	scanner := bufio.NewScanner(in)
	answers := make(map[int]int, len(quiz.Questions))

	for i, q := range quiz.Questions {
		fmt.Fprintf(out, "\nQuestion %d of %d: %s\n", i+1, len(quiz.Questions), q.Statement)
		for _, o := range quiz.Options {
			fmt.Fprintf(out, "  %d) %s\n", o.Value, o.Label)
		}
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return err
				}
				return fmt.Errorf("quiz aborted")
			}
			v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err == nil && v >= 1 && v <= len(quiz.Options) {
				answers[q.ID] = v
				break
			}
			fmt.Fprintf(out, "Please answer 1-%d\n", len(quiz.Options))
		}
	}

	profile, err := svc.Aggregate(answers)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}

