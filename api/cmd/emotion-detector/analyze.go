package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"emotion-detector/api/internal/emotion"
)

func NewAnalyzeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Print the emotion sentence for a piece of text",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := emotion.Analyze(cmd.Context(), a.clf, strings.Join(args, " "))
			if errors.Is(err, emotion.ErrInvalidText) {
				return errors.New(emotion.InvalidTextMessage)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
