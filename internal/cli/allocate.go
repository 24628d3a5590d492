package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dompetku/backend/internal/allocation"
	"github.com/dompetku/backend/internal/config"
	"github.com/dompetku/backend/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ruleInput is a rule as read from a rules file.
type ruleInput struct {
	ID             uuid.UUID           `json:"id"`
	TargetPocketID uuid.UUID           `json:"targetPocketId"`
	Priority       allocation.Priority `json:"priority"`
	Kind           allocation.Kind     `json:"kind"`
	Value          *decimal.Decimal    `json:"value"`
	IsActive       *bool               `json:"isActive"`
}

func (r ruleInput) rule() (allocation.Rule, error) {
	if r.Value == nil {
		return allocation.Rule{}, fmt.Errorf("%w: missing", allocation.ErrInvalidValue)
	}

	id := r.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return allocation.Rule{
		ID:             id,
		TargetPocketID: r.TargetPocketID,
		Priority:       r.Priority,
		Kind:           r.Kind,
		Value:          *r.Value,
		IsActive:       r.IsActive == nil || *r.IsActive,
	}, nil
}

// report is the JSON output of the allocate command.
type report struct {
	Income      decimal.Decimal    `json:"income"`
	Allocations []allocation.Entry `json:"allocations"`
	Skipped     []allocation.Skip  `json:"skipped"`
	Allocated   decimal.Decimal    `json:"allocated"`
	Remaining   decimal.Decimal    `json:"remaining"`
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func allocateCmd(cfgFile *string) *cobra.Command {
	var (
		income    string
		rulesFile string
		pockets   []string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Preview how an income is distributed by a set of rules",
		Long: `Preview how an income is distributed by a set of rules without a database.

The rules file contains a JSON array of rules:

  [{"targetPocketId": "...", "priority": "high", "kind": "percentage", "value": "30"}]

Rules targeting pockets that are not listed with --pockets are skipped. If
--pockets is not set, all pockets targeted by the rules exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := decimal.NewFromString(income)
			if err != nil {
				return fmt.Errorf("invalid income %q: %w", income, err)
			}

			rules, err := readRules(rulesFile)
			if err != nil {
				return err
			}

			ids, err := pocketIDs(pockets, rules)
			if err != nil {
				return err
			}

			r, err := allocation.Calculate(amount, rules, ids)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}

			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}

			formatter, err := cfg.Formatter()
			if err != nil {
				return err
			}

			return writeTable(cmd.OutOrStdout(), formatter, r)
		},
	}

	cmd.Flags().StringVar(&income, "income", "", "income to distribute")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "JSON file containing the rules")
	cmd.Flags().StringSliceVar(&pockets, "pockets", nil, "IDs of the existing pockets")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("income")
	_ = cmd.MarkFlagRequired("rules")

	return cmd
}

// readRules reads the rules from a JSON file.
func readRules(path string) ([]allocation.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	var inputs []ruleInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	rules := make([]allocation.Rule, 0, len(inputs))
	for i, input := range inputs {
		rule, err := input.rule()
		if err != nil {
			return nil, fmt.Errorf("rule %d in %s: %w", i+1, path, err)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// pocketIDs parses the pocket IDs. Without IDs, the rule targets are used.
func pocketIDs(values []string, rules []allocation.Rule) ([]uuid.UUID, error) {
	if len(values) == 0 {
		ids := make([]uuid.UUID, 0, len(rules))
		for _, r := range rules {
			ids = append(ids, r.TargetPocketID)
		}
		return ids, nil
	}

	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid pocket ID %q: %w", v, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func writeJSON(w io.Writer, r allocation.Result) error {
	out := report{
		Income:      r.Income,
		Allocations: r.Allocations,
		Skipped:     r.Skipped,
		Allocated:   r.Allocated(),
		Remaining:   r.Remaining,
	}

	if out.Allocations == nil {
		out.Allocations = []allocation.Entry{}
	}

	if out.Skipped == nil {
		out.Skipped = []allocation.Skip{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, f money.Formatter, r allocation.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("Priority"),
		headerStyle.Render("Pocket"),
		headerStyle.Render("Amount"),
		headerStyle.Render("Status"))

	for _, g := range r.ByPriority() {
		for _, e := range g.Allocations {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.Priority, e.PocketID, f.Format(e.Amount), "allocated")
		}
	}

	for _, s := range r.Skipped {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", "-", s.PocketID, f.Format(s.Amount), "skipped: "+string(s.Reason))
	}

	fmt.Fprintf(tw, "\t%s\t%s\t\n", "Income", f.Format(r.Income))
	fmt.Fprintf(tw, "\t%s\t%s\t\n", "Allocated", f.Format(r.Allocated()))
	fmt.Fprintf(tw, "\t%s\t%s\t\n", "Remaining", f.Format(r.Remaining))

	return tw.Flush()
}
