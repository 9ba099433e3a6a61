package runs

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/palabras/pkg/db"
)

func RunsAction(c *cli.Context) error {
	dir := c.String("dir")

	database, err := dbpkg.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-12s %-8s %-16s %-30s\n",
		"ID", "Created", "Date", "Words", "Status", "Error")
	fmt.Println(strings.Repeat("-", 96))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-12s %-8d %-16s %-30s\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Date,
			r.WordCount,
			r.Status,
			r.Error,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}
