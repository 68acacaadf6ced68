package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"geocalc/internal/logger"
	"geocalc/internal/models"
	"geocalc/internal/services"
)

// errNoResult marks runs whose display ended on a message instead of a number.
var errNoResult = errors.New("no result")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func newEvalCommand(opts *rootOptions) *cobra.Command {
	var copyResult bool

	cmd := &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate an expression the way the keypad does",
		Long: `Type the expression into the calculator and press "=".

Arguments are joined without separators. X and × multiply, ÷ divides, and *
and / are accepted as well. The display text is printed; when it is "Error"
the command exits with a non-zero status. Put "--" before an expression that
starts with "-".`,
		Example: `  geocalc eval 12+3X4
  geocalc eval "7 ÷ 2"
  geocalc eval --copy 2.5 X 4
  geocalc eval -- -5+3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger()
			if err != nil {
				return err
			}

			calculator := services.NewCalculatorService()
			display := models.NewDisplay()
			calculator.Append(display, strings.Join(args, ""))
			expression := display.Text()

			evalErr := calculator.Evaluate(display)
			if evalErr != nil {
				log.Debug("Eval", "evaluation failed", map[string]interface{}{
					"expression": expression,
					"error":      evalErr.Error(),
				})
			}
			return printResult(cmd, log, display.Text(), copyResult, evalErr)
		},
	}

	cmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the result to the clipboard")
	return cmd
}

func newAreaCommand(opts *rootOptions) *cobra.Command {
	var copyResult bool

	cmd := &cobra.Command{
		Use:   "area <shape> [dimension...]",
		Short: "Compute the area of a square, rectangle, triangle or circle",
		Long: `Compute an area with the same formulas as the area panel.

  Square     side
  Rectangle  length width
  Triangle   base height
  Circle     radius

Shape names are case sensitive. Missing or non-numeric dimensions print
"Invalid input!", an unknown shape prints "Select a valid shape"; both exit
with a non-zero status. Put "--" before negative dimensions.`,
		Example: `  geocalc area Square 4
  geocalc area -- Square -1
  geocalc area Circle 2
  geocalc area Triangle 3 5`,
		Args: cobra.RangeArgs(1, 3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return models.ShapeOptions()[1:], cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.logger()
			if err != nil {
				return err
			}

			area := services.NewAreaService()
			area.SelectShape(args[0])

			var inputs [2]string
			copy(inputs[:], args[1:])

			display := models.NewDisplay()
			areaErr := area.ComputeArea(display, inputs)
			if areaErr != nil {
				log.Debug("Area", "area not computed", map[string]interface{}{
					"shape": args[0],
					"error": areaErr.Error(),
				})
			}
			return printResult(cmd, log, display.Text(), copyResult, areaErr)
		},
	}

	cmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the result to the clipboard")
	return cmd
}

// printResult writes the display text and, on success, optionally copies it.
func printResult(cmd *cobra.Command, log logger.Logger, text string, copyResult bool, cause error) error {
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if cause != nil {
		return fmt.Errorf("%w: %s", errNoResult, text)
	}

	if copyResult {
		if err := writeClipboard(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		log.Debug("Clipboard", "result copied", map[string]interface{}{
			"result": text,
		})
	}
	return nil
}
