package main

import (
	"fmt"
	"strconv"
	"strings"

	"cookbook/internal/model"
	"cookbook/internal/recipe"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func formatPeso(amount float64) string {
	return fmt.Sprintf("₱%.2f", amount)
}

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := ctx.service(cmd.ErrOrStderr())
			recipes, err := svc.GetAll(cmd.Context(), 0, 0)
			if err != nil {
				return err
			}
			printRecipeTable(cmd, ctx, recipes, nil)
			return nil
		},
	}
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search recipes by title or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := ctx.service(cmd.ErrOrStderr())
			all, err := svc.GetAll(cmd.Context(), 0, 0)
			if err != nil {
				return err
			}
			matches, err := svc.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No recipes match %q\n", args[0])
				return nil
			}

			// keep list numbering so results can be passed to show and cost
			positions := make(map[string]int, len(all))
			for i, r := range all {
				positions[r.ID.String()] = i + 1
			}
			printRecipeTable(cmd, ctx, matches, positions)
			return nil
		},
	}
}

func printRecipeTable(cmd *cobra.Command, ctx *commandContext, recipes []model.Recipe, positions map[string]int) {
	rows := make([][]string, 0, len(recipes))
	for i, r := range recipes {
		n := i + 1
		if positions != nil {
			n = positions[r.ID.String()]
		}
		rows = append(rows, []string{
			strconv.Itoa(n),
			r.Title,
			r.Category,
			strconv.Itoa(len(r.Ingredients)),
			formatPeso(r.TotalCost),
		})
	}

	fancy := !*ctx.plain && isTerminal(cmd.OutOrStdout())
	out := renderTable([]column{
		{header: "#", align: text.AlignRight},
		{header: "Title", align: text.AlignLeft},
		{header: "Category", align: text.AlignLeft},
		{header: "Ingredients", align: text.AlignRight},
		{header: "Cost", align: text.AlignRight},
	}, rows, fancy)
	fmt.Fprintln(cmd.OutOrStdout(), out)
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <n>",
		Short: "Show a recipe by its list number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe number %q", args[0])
			}
			svc := ctx.service(cmd.ErrOrStderr())
			rec, err := recipeAt(cmd.Context(), svc, n)
			if err != nil {
				return err
			}
			text, err := svc.Display(cmd.Context(), rec.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\nTotal Cost: %s\n", text, formatPeso(rec.TotalCost))
			return nil
		},
	}
}

func newCostCommand(ctx *commandContext) *cobra.Command {
	var have []int
	var labels []string
	var names []string

	cmd := &cobra.Command{
		Use:   "cost <n>",
		Short: "Calculate what a recipe still costs given the ingredients you have",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid recipe number %q", args[0])
			}
			svc := ctx.service(cmd.ErrOrStderr())
			rec, err := recipeAt(cmd.Context(), svc, n)
			if err != nil {
				return err
			}

			// ingredient numbers are shown 1-based
			indexes := make([]int, len(have))
			owned := make(map[int]bool, len(have))
			for i, h := range have {
				if h < 1 || h > len(rec.Ingredients) {
					return fmt.Errorf("ingredient %d does not exist (have %d)", h, len(rec.Ingredients))
				}
				indexes[i] = h - 1
				owned[h-1] = true
			}
			byText := recipe.Union(recipe.AvailableFromLabels(labels), recipe.AvailableFromNames(names))

			resp, err := svc.Cost(cmd.Context(), rec.ID, &model.CostRequest{
				AvailableIndexes: indexes,
				AvailableLabels:  labels,
				AvailableNames:   names,
			})
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(rec.Ingredients))
			for i, ing := range rec.Ingredients {
				mark := ""
				if owned[i] || byText.Contains(strings.ToLower(ing.Name)) {
					mark = "yes"
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), ing.Name, ing.Quantity, formatPeso(ing.Price), mark})
			}
			fancy := !*ctx.plain && isTerminal(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", rec.Title)
			fmt.Fprintln(out, renderTable([]column{
				{header: "#", align: text.AlignRight},
				{header: "Ingredient", align: text.AlignLeft},
				{header: "Quantity", align: text.AlignLeft},
				{header: "Price", align: text.AlignRight},
				{header: "Have", align: text.AlignCenter},
			}, rows, fancy))
			fmt.Fprintf(out, "Total Cost:     %s\n", formatPeso(resp.Total))
			fmt.Fprintf(out, "Remaining Cost: %s\n", formatPeso(resp.Remaining))
			fmt.Fprintf(out, "You Save:       %s\n", formatPeso(resp.Saved))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&have, "have", nil, "Ingredient numbers you already have (e.g. 1,3)")
	cmd.Flags().StringArrayVar(&labels, "label", nil, "Ingredient label you already have, matched by its last word (repeatable)")
	cmd.Flags().StringSliceVar(&names, "name", nil, "Ingredient names you already have")

	return cmd
}
