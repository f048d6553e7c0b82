package runner

import (
	"fmt"

	"github.com/fatih/color"

	proberrors "braindump-probe/internal/common/errors"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func (r *Runner) printHeader(rep *Report) {
	fmt.Fprintf(r.out, "%s\n", bold("brain-dump contract probe"))
	fmt.Fprintf(r.out, "run %s against %s\n\n", rep.RunID, cyan(r.cfg.Service.BaseURL))
}

func (r *Runner) printCheck(cr CheckReport) {
	fmt.Fprintf(r.out, "%s %s\n", bold("==>"), cr.Name)

	if cr.Result != nil {
		for _, a := range cr.Result.Assertions {
			if a.Passed {
				fmt.Fprintf(r.out, "    %s %s\n", green("PASS"), a.Description)
			} else if a.Detail != "" {
				fmt.Fprintf(r.out, "    %s %s: %s\n", red("FAIL"), a.Description, a.Detail)
			} else {
				fmt.Fprintf(r.out, "    %s %s\n", red("FAIL"), a.Description)
			}
		}
	}

	for _, hint := range cr.Hints {
		fmt.Fprintf(r.out, "    %s %s\n", yellow("HINT"), hint)
	}

	if cr.Err != nil {
		fmt.Fprintf(r.out, "    %s %s\n", red("ERROR"), cr.Err.Error())
	}
	fmt.Fprintln(r.out)
}

func (r *Runner) printRegistration(url string) {
	fmt.Fprintf(r.out, "%s user %q is not registered; contract checks skipped\n",
		yellow("NOTE"), r.cfg.Probe.UserID)
	if url != "" {
		fmt.Fprintf(r.out, "     register at: %s\n", cyan(url))
	}
	fmt.Fprintln(r.out)
}

func (r *Runner) printSummary(rep *Report) {
	passed, failed, hints := 0, 0, 0
	for _, c := range rep.Checks {
		if c.Err != nil || (c.Result != nil && !c.Result.Valid()) {
			failed++
		} else {
			passed++
		}
		hints += len(c.Hints)
	}

	fmt.Fprintf(r.out, "%s %d passed, %d failed", bold("summary:"), passed, failed)
	if hints > 0 {
		fmt.Fprintf(r.out, ", %d hint(s)", hints)
	}
	if rep.ShortCircuited {
		fmt.Fprintf(r.out, " %s", yellow("(short-circuited: user not registered)"))
	}
	fmt.Fprintln(r.out)

	for _, c := range rep.Checks {
		if c.Err != nil {
			fmt.Fprintf(r.out, "  %s %s: %s\n", red(string(proberrors.CodeOf(c.Err))), c.Name, c.Err.Error())
		}
	}
}
