package main

import (
	"fmt"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newChecklistCommand(app *appContext) *cobra.Command {
	checklistCmd := &cobra.Command{
		Use:   "checklist",
		Short: "Inspect or regenerate order checklists",
	}
	checklistCmd.AddCommand(
		newChecklistGenerateCommand(app),
		newChecklistShowCommand(app),
	)
	return checklistCmd
}

func newChecklistGenerateCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <order-id>",
		Short: "Generate the checklist of an assigned order if it has none",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			orderID, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}
			root, err := app.compositionRoot()
			if err != nil {
				return err
			}

			cmd, err := commands.NewGenerateChecklistCommand(orderID)
			if err != nil {
				return err
			}
			count, err := root.CreateGenerateChecklistCommandHandler().Handle(command.Context(), cmd)
			if err != nil {
				return err
			}
			fmt.Fprintf(command.OutOrStdout(), "Order %s has %d checklist items\n", orderID, count)
			return nil
		},
	}
}

func newChecklistShowCommand(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Print an order's checklist and progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			orderID, err := kernel.UUIDFromString(args[0])
			if err != nil {
				return err
			}
			root, err := app.compositionRoot()
			if err != nil {
				return err
			}

			query, err := queries.NewGetOrderChecklistQuery(orderID)
			if err != nil {
				return err
			}
			view, err := root.CreateGetOrderChecklistQueryHandler().Handle(command.Context(), query)
			if err != nil {
				return err
			}
			fmt.Fprintln(command.OutOrStdout(), renderChecklist(view))
			return nil
		},
	}
}

func renderChecklist(view queries.GetOrderChecklistQueryResponse) string {
	rows := make([][]string, 0, len(view.Items))
	for _, item := range view.Items {
		required := "yes"
		if item.IsOptional {
			required = "no"
		}
		done := color.New(color.FgYellow).Sprint("open")
		if item.Completed {
			done = color.New(color.FgGreen).Sprint("done")
		}
		rows = append(rows, []string{strconv.Itoa(item.OrderIndex + 1), item.Description, required, done})
	}

	p := view.Progress
	if !p.HasChecklist() {
		return fmt.Sprintf("%s (%s)\nNo checklist items; run `checklist generate %s`",
			view.OrderNumber, view.Status, view.OrderID)
	}
	return fmt.Sprintf("%s (%s)\n%s\nRequired %d/%d, all items %d/%d, %d%% complete",
		view.OrderNumber, view.Status,
		renderTable(
			[]string{"#", "Step", "Required", "Done"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
		),
		p.CompletedRequired, p.RequiredItems, p.CompletedItems, p.TotalItems, p.Percentage)
}
