// Package console is the interactive menu front-end. It is thin glue: it
// prompts, validates input and renders results; all bookkeeping lives in
// the ledger.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"tally/internal/core"
	"tally/internal/ledger"
	"tally/internal/log"
)

type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	ledger *ledger.Ledger
	logger *log.Logger
	theme  Theme
}

func New(in io.Reader, out io.Writer, l *ledger.Ledger, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		ledger: l,
		logger: logger.WithComponent(log.ComponentConsole),
		theme:  DefaultTheme(),
	}
}

// Run drives the menu loop until the user exits, input ends, or the
// context is cancelled.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printMenu()
		choice, ok := c.readLine()
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			c.addExpense(ctx)
		case "2":
			c.printExpenses()
		case "3":
			c.printTotal()
		case "4":
			c.printTotalByCategory()
		case "5":
			c.printCategoryExtremes()
		case "6":
			c.printTrend()
		case "7":
			fmt.Fprintln(c.out, "Exiting application.")
			return nil
		default:
			fmt.Fprintln(c.out, c.theme.Error.Render(fmt.Sprintf("Invalid choice: %s", strings.TrimSpace(choice))))
		}
		fmt.Fprintln(c.out)
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out, c.theme.Title.Render("- - - Expense Tracker Menu - - -"))
	fmt.Fprint(c.out, ""+
		"1. Add a new expense\n"+
		"2. View all expenses\n"+
		"3. View total expense\n"+
		"4. View total expense by category\n"+
		"5. View most and least expensive categories\n"+
		"6. View expense trend\n"+
		"7. Exit\n")
	fmt.Fprint(c.out, "Enter your choice: ")
}

func (c *Console) addExpense(ctx context.Context) {
	category, ok := c.prompt("Enter expense category: ")
	if !ok {
		return
	}
	for strings.TrimSpace(category) == "" {
		fmt.Fprintln(c.out, c.theme.Error.Render("Category cannot be empty."))
		if category, ok = c.prompt("Enter expense category: "); !ok {
			return
		}
	}

	amount, ok := c.promptAmount()
	if !ok {
		return
	}
	note, ok := c.prompt("Enter expense note: ")
	if !ok {
		return
	}
	date, ok := c.promptDate()
	if !ok {
		return
	}

	rec := core.ExpenseRecord{
		Category: strings.TrimSpace(category),
		Amount:   amount,
		Note:     note,
		Date:     date,
	}
	if err := c.ledger.Enter(ctx, rec); err != nil {
		c.logger.ErrorContext(ctx, "Failed to record expense",
			log.FieldOperation, log.OpEnter, log.FieldError, err)
		fmt.Fprintln(c.out, c.theme.Error.Render(
			"Expense kept in memory but saving failed: "+err.Error()))
		return
	}
	fmt.Fprintln(c.out, "Expense recorded.")
}

func (c *Console) promptAmount() (core.Money, bool) {
	for {
		raw, ok := c.prompt("Enter expense amount: ")
		if !ok {
			return core.Money{}, false
		}
		cents, err := core.ParseDecimalToCents(raw)
		if err != nil {
			fmt.Fprintln(c.out, c.theme.Error.Render("Invalid amount."))
			continue
		}
		return core.Money{Cents: cents}, true
	}
}

func (c *Console) promptDate() (core.Date, bool) {
	for {
		raw, ok := c.prompt("Enter date (MM/DD/YYYY): ")
		if !ok {
			return core.Date{}, false
		}
		date, err := core.ParseDate(raw)
		if err != nil {
			fmt.Fprintln(c.out, c.theme.Error.Render("Invalid date."))
			continue
		}
		return date, true
	}
}

func (c *Console) printExpenses() {
	fmt.Fprintln(c.out, c.theme.Header.Render("- - - All Expenses - - -"))
	records := c.ledger.ListAll()
	if len(records) == 0 {
		fmt.Fprintln(c.out, c.theme.Faint.Render("No expenses recorded yet."))
		return
	}
	for _, rec := range records {
		fmt.Fprintf(c.out, "%s  %-15s $%s  %s\n",
			rec.Date.String(), rec.Category, rec.Amount.String(), rec.Note)
	}
}

func (c *Console) printTotal() {
	fmt.Fprintln(c.out, c.theme.Header.Render("- - - Total Expense - - -"))
	fmt.Fprintf(c.out, "Total expense: $%s\n", c.ledger.Total().String())
}

func (c *Console) printTotalByCategory() {
	fmt.Fprintln(c.out, c.theme.Header.Render("- - - Expense by Category - - -"))
	totals := c.ledger.TotalByCategory()
	if len(totals) == 0 {
		fmt.Fprintln(c.out, c.theme.Faint.Render("No expenses to categorize."))
		return
	}
	// The ledger leaves map order unspecified; sort for stable display.
	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(c.out, "Category: %-15s Total expense: $%s\n",
			category, totals[category].String())
	}
}

func (c *Console) printCategoryExtremes() {
	fmt.Fprintln(c.out, c.theme.Header.Render("- - - Category Extremes - - -"))
	most, ok := c.ledger.MostExpensiveCategory()
	if !ok {
		fmt.Fprintln(c.out, c.theme.Faint.Render("No expenses recorded yet."))
		return
	}
	least, _ := c.ledger.LeastExpensiveCategory()
	fmt.Fprintf(c.out, "Most expensive category: %s\n", most)
	fmt.Fprintf(c.out, "Least expensive category: %s\n", least)
}

func (c *Console) printTrend() {
	fmt.Fprintln(c.out, c.theme.Header.Render("- - - Monthly Expense Trend - - -"))
	trend := c.ledger.Trend()
	if len(trend) == 0 {
		fmt.Fprintln(c.out, c.theme.Faint.Render("No expenses to show a trend."))
		return
	}
	for _, bucket := range trend {
		fmt.Fprintf(c.out, "Month: %s, Total expense: $%s\n",
			bucket.Month, bucket.Total.String())
	}
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
