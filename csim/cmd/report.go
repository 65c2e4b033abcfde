package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/csim/datarecording"
	"github.com/sarchlab/csim/trace"
)

var reportCmd = &cobra.Command{
	Use:   "report <database>",
	Short: "Summarize a recorded simulation database.",
	Long: "`report` reads a database produced with `--record` and prints " +
		"the stored run summaries.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	reader := datarecording.NewReader(args[0])
	defer reader.Close()

	reader.MapTable("summaries", trace.SummaryEntry{})
	reader.MapTable("accesses", trace.AccessEntry{})

	results, _, err := reader.Query(
		cmd.Context(), "summaries", datarecording.QueryParams{})
	if err != nil {
		return err
	}

	for _, result := range results {
		summary := result.(*trace.SummaryEntry)
		fmt.Printf("hits:%d misses:%d evictions:%d\n",
			summary.Hits, summary.Misses, summary.Evictions)
	}

	_, accessCount, err := reader.Query(
		cmd.Context(), "accesses",
		datarecording.QueryParams{Limit: 1})
	if err != nil {
		return err
	}

	fmt.Printf("accesses recorded: %d\n", accessCount)

	return nil
}
