package main

import (
	"fmt"

	"github.com/pagelift/pagelift"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	filter := pagelift.RecordFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}
	if c.Failed {
		succeeded := false
		filter.Succeeded = &succeeded
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelift.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found")
		return nil
	}

	for _, r := range records {
		status := "ok"
		if !r.Succeeded {
			status = "failed"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-6s  %s -> %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), status, r.SourceURL, r.OutputPath)
	}

	return nil
}
