// Package cmd provides the command-line interface for csim.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/csim/cache"
	"github.com/sarchlab/csim/datarecording"
	"github.com/sarchlab/csim/monitoring"
	"github.com/sarchlab/csim/trace"
)

var (
	setIndexBits    int
	linesPerSet     int
	blockOffsetBits int
	traceFileName   string
	verbose         bool
	recordPath      string
	monitorPort     int
	openBrowser     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "csim -s <num> -E <num> -b <num> -t <file>",
	Short: "Simulate a set-associative cache with LRU replacement.",
	Long: `csim replays a valgrind-style memory trace on a simulated ` +
		`set-associative cache with LRU replacement and reports the ` +
		`number of hits, misses, and evictions.`,
	SilenceUsage: true,
	RunE:         runSimulation,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	loadEnvDefaults()

	rootCmd.Flags().IntVarP(&setIndexBits, "set-index-bits", "s", 0,
		"Number of set index bits")
	rootCmd.Flags().IntVarP(&linesPerSet, "lines-per-set", "E", 1,
		"Number of lines per set")
	rootCmd.Flags().IntVarP(&blockOffsetBits, "block-offset-bits", "b", 0,
		"Number of block offset bits")
	rootCmd.Flags().StringVarP(&traceFileName, "tracefile", "t", "",
		"Trace file to replay")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Print the outcome of every data reference")
	rootCmd.Flags().StringVar(&recordPath, "record", "",
		"Record every access into a SQLite database at the given path")
	rootCmd.Flags().IntVar(&monitorPort, "monitor-port", monitorPort,
		"Serve live counters over HTTP on the given port (0 disables)")
	rootCmd.Flags().BoolVar(&openBrowser, "open-browser", false,
		"Open the monitor page in a browser")

	cobra.CheckErr(rootCmd.MarkFlagRequired("tracefile"))
}

// loadEnvDefaults reads flag defaults from the environment, optionally
// populated from a .env file in the working directory.
func loadEnvDefaults() {
	_ = godotenv.Load()

	if port, ok := os.LookupEnv("CSIM_MONITOR_PORT"); ok {
		if n, err := strconv.Atoi(port); err == nil {
			monitorPort = n
		}
	}
}

func runSimulation(_ *cobra.Command, _ []string) error {
	geometry := cache.Geometry{
		SetIndexBits:    setIndexBits,
		BlockOffsetBits: blockOffsetBits,
		LinesPerSet:     linesPerSet,
	}
	if err := geometry.Validate(); err != nil {
		return err
	}

	engine := cache.MakeBuilder().
		WithSetIndexBits(setIndexBits).
		WithBlockOffsetBits(blockOffsetBits).
		WithLinesPerSet(linesPerSet).
		Build("csim")

	runner := trace.NewRunner(engine)

	if verbose {
		runner.WithVerboseOutput(os.Stdout)
	}

	if recordPath != "" {
		runner.AcceptTracer(trace.NewDBTracer(datarecording.New(recordPath)))
	}

	if monitorPort != 0 || openBrowser {
		monitor := monitoring.NewMonitor().WithPortNumber(monitorPort)
		if openBrowser {
			monitor.WithBrowser()
		}

		monitor.RegisterEngine(engine)
		monitor.StartServer()
	}

	traceFile, err := os.Open(traceFileName)
	if err != nil {
		return fmt.Errorf("csim: cannot open trace: %w", err)
	}
	defer traceFile.Close()

	summary, err := runner.Run(traceFile)
	if err != nil {
		return err
	}

	fmt.Printf("hits:%d misses:%d evictions:%d\n",
		summary.Hits, summary.Misses, summary.Evictions)

	return nil
}
