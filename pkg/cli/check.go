package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/reqexpect/pkg/expect"
	"github.com/getmockd/reqexpect/pkg/request"
	"github.com/getmockd/reqexpect/pkg/ruleset"
)

var (
	checkRulesPath string
	checkJSON      bool
)

// ErrNoMatch is returned by check when at least one rule fails.
var ErrNoMatch = errors.New("request does not match expectations")

// ruleFailure pairs a failing rule with the observed-state diagnostic.
type ruleFailure struct {
	Rule     int            `json:"rule"`
	Expected expect.Matcher `json:"expected"`
	Actual   expect.Matcher `json:"actual"`
}

// checkResult is the JSON shape of a check run.
type checkResult struct {
	Matched  bool          `json:"matched"`
	Request  string        `json:"request"`
	Failures []ruleFailure `json:"failures,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check <uri>",
	Short: "Check a request URI against a rule file",
	Long: `Check parses the request URI, evaluates every rule from the rule file
against it in order, and reports each failing rule together with what was
actually observed. The exit code is non-zero when any rule fails.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := ruleset.LoadFromFile(checkRulesPath)
		if err != nil {
			return err
		}

		req := request.Parse(args[0])
		logger.Debug("evaluating rules",
			"ruleset", rs.Name,
			"rules", len(rs.Rules),
			"request", req.String())

		result := evaluate(rs, req)
		if err := writeCheckResult(cmd.OutOrStdout(), result, checkJSON); err != nil {
			return err
		}
		if !result.Matched {
			return ErrNoMatch
		}
		return nil
	},
}

// evaluate runs every rule of the set against the request, pairing each
// failure with its diagnostic. Rule order is preserved.
func evaluate(rs *ruleset.RuleSet, req request.Request) checkResult {
	result := checkResult{Matched: true, Request: req.String()}
	for i, rule := range rs.Rules {
		if diag := rule.Validate(req); diag != nil {
			result.Matched = false
			result.Failures = append(result.Failures, ruleFailure{
				Rule:     i,
				Expected: rule,
				Actual:   *diag,
			})
		}
	}
	return result
}

func writeCheckResult(w io.Writer, result checkResult, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if result.Matched {
		_, err := fmt.Fprintf(w, "matched: %s\n", result.Request)
		return err
	}
	fmt.Fprintf(w, "not matched: %s\n", result.Request)
	for _, f := range result.Failures {
		fmt.Fprintf(w, "  rule %d: expected %s, got %s\n", f.Rule, f.Expected, f.Actual)
	}
	return nil
}

func init() {
	checkCmd.Flags().StringVar(&checkRulesPath, "rules", "", "Path to the YAML or JSON rule file (required)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Emit the result as JSON")
	_ = checkCmd.MarkFlagRequired("rules")
	rootCmd.AddCommand(checkCmd)
}
