package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/lucasgdosr/deque/v2/internal/workload"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "DEQUEBENCH"

type commandLine struct {
	v       *viper.Viper
	log     *logrus.Logger
	cfgFile string
}

func newCommandLine() *commandLine {
	return &commandLine{v: viper.New(), log: logrus.New()}
}

func (cl *commandLine) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dequebench",
		Short:         "Run workloads against the copy-on-write deque",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cl.configure(cmd.Flags())
		},
	}
	cmd.PersistentFlags().StringVar(&cl.cfgFile, "config", "", "config file (yaml, toml or json)")
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().Bool("log-json", false, "log in JSON instead of text")

	cmd.AddCommand(cl.runCommand(), cl.listCommand())
	return cmd
}

// configure layers the config file and DEQUEBENCH_* environment variables
// under the command line flags, then sets up logging.
func (cl *commandLine) configure(flags *pflag.FlagSet) error {
	cl.v.SetEnvPrefix(envPrefix)
	cl.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cl.v.AutomaticEnv()
	if err := cl.v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	if cl.cfgFile != "" {
		cl.v.SetConfigFile(cl.cfgFile)
		if err := cl.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", cl.cfgFile)
		}
	}

	level, err := logrus.ParseLevel(cl.v.GetString("log-level"))
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	cl.log.SetLevel(level)
	cl.log.SetOutput(os.Stderr)
	if cl.v.GetBool("log-json") {
		cl.log.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

func (cl *commandLine) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one workload, or all of them",
		Example: `  dequebench run --workload fifo --ops 1000000
  DEQUEBENCH_SIZE=4096 dequebench run --workload all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return cl.run(ctx, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("workload", "w", "all", "workload to run, or all")
	cmd.Flags().IntP("ops", "n", 1_000_000, "operations per workload")
	cmd.Flags().IntP("size", "s", 1024, "steady state number of elements")
	cmd.Flags().Int("clones", 8, "clones kept alive by the cow workload")
	cmd.Flags().Uint64("seed", 1, "random seed")
	return cmd
}

func (cl *commandLine) configs() ([]workload.Config, error) {
	names := workload.Names()
	if w := cl.v.GetString("workload"); w != "all" {
		names = []workload.Name{workload.Name(w)}
	}
	cfgs := make([]workload.Config, 0, len(names))
	for _, name := range names {
		cfg := workload.Config{
			Workload: name,
			Ops:      cl.v.GetInt("ops"),
			Size:     cl.v.GetInt("size"),
			Clones:   cl.v.GetInt("clones"),
			Seed:     cl.v.GetUint64("seed"),
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

func (cl *commandLine) run(ctx context.Context, out io.Writer) error {
	cfgs, err := cl.configs()
	if err != nil {
		return err
	}
	results := make([]workload.Result, 0, len(cfgs))
	for _, cfg := range cfgs {
		res, err := workload.Run(ctx, cfg, cl.log)
		if err != nil {
			cl.log.WithError(err).Error("workload failed")
			return err
		}
		results = append(results, res)
	}
	renderResults(out, results)
	return nil
}

func renderResults(out io.Writer, results []workload.Result) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"workload", "ops", "elapsed", "ops/s", "len", "cap", "grows", "copies", "checksum"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range results {
		table.Append([]string{
			string(r.Workload),
			humanize.Comma(int64(r.Ops)),
			r.Elapsed.Round(time.Microsecond).String(),
			humanize.SIWithDigits(r.OpsPerSecond(), 2, ""),
			humanize.Comma(int64(r.Len)),
			humanize.Comma(int64(r.Cap)),
			humanize.Comma(int64(r.Grows)),
			humanize.Comma(int64(r.Copies)),
			fmt.Sprint(r.Checksum),
		})
	}
	table.Render()
}

func (cl *commandLine) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available workloads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"workload", "description"})
			for _, d := range workload.Descriptions {
				table.Append([]string{string(d.Name), d.Description})
			}
			table.Render()
		},
	}
}
