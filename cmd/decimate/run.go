package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/decimate"
	"github.com/arloliu/decimate/format"
	"github.com/arloliu/decimate/snapshot"
)

const defaultWidth = 1000

type runOptions struct {
	input         string
	configPath    string
	width         int
	algorithm     string
	xStart        float64
	xEnd          float64
	output        string
	snapshotPath  string
	compression   string
	indexEncoding string
	bigEndian     bool
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "downsample a CSV series",
		Long: "Reads a CSV file with a header row (first column x, second column y), downsamples it " +
			"and writes the kept rows as CSV or as a binary snapshot. Flags override the YAML config.",
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input CSV file")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVarP(&opts.width, "width", "w", defaultWidth, "number of points to keep")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", format.DefaultAlgorithm.String(),
		"downsampling algorithm (lttb or nth)")
	cmd.Flags().Float64Var(&opts.xStart, "x-start", 0, "inclusive lower x bound")
	cmd.Flags().Float64Var(&opts.xEnd, "x-end", 0, "exclusive upper x bound")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output CSV file (default stdout)")
	cmd.Flags().StringVar(&opts.snapshotPath, "snapshot", "", "write a binary snapshot instead of CSV")
	cmd.Flags().StringVar(&opts.compression, "compression", "none",
		"snapshot compression (none, zstd, s2 or lz4)")
	cmd.Flags().StringVar(&opts.indexEncoding, "index-encoding", "delta", "snapshot index encoding (raw or delta)")
	cmd.Flags().BoolVar(&opts.bigEndian, "big-endian", false, "write the snapshot in big-endian byte order")
	_ = cmd.MarkFlagRequired("input")
	cmd.MarkFlagsMutuallyExclusive("output", "snapshot")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := opts.config(cmd)
		if err != nil {
			return err
		}

		return opts.run(cmd.OutOrStdout(), cfg)
	}

	return cmd
}

// config merges the YAML config file, if any, with the flags the user set explicitly.
func (o *runOptions) config(cmd *cobra.Command) (decimate.Config, error) {
	var fc decimate.FileConfig
	if o.configPath != "" {
		f, err := os.Open(o.configPath)
		if err != nil {
			return decimate.Config{}, errors.Wrap(err, "cannot open config file")
		}
		defer f.Close()

		if fc, err = decimate.ParseFileConfig(f); err != nil {
			return decimate.Config{}, errors.Wrapf(err, "cannot parse %s", o.configPath)
		}
	}

	changed := cmd.Flags().Changed
	if changed("width") || fc.Width == nil {
		fc.Width = &o.width
	}
	if changed("algorithm") || fc.Algorithm == "" {
		fc.Algorithm = o.algorithm
	}
	if changed("x-start") || changed("x-end") {
		if fc.XRange == nil {
			fc.XRange = &decimate.FileRange{}
		}
		if changed("x-start") {
			fc.XRange.Start = &o.xStart
		}
		if changed("x-end") {
			fc.XRange.End = &o.xEnd
		}
	}

	cfg, err := fc.Config()
	if err != nil {
		return decimate.Config{}, errors.Wrap(err, "invalid downsampling configuration")
	}

	return cfg, nil
}

func (o *runOptions) run(stdout io.Writer, cfg decimate.Config) error {
	f, err := os.Open(o.input)
	if err != nil {
		return errors.Wrap(err, "cannot open input")
	}
	frame, err := readFrame(f)
	f.Close()
	if err != nil {
		return errors.Wrapf(err, "cannot load %s", o.input)
	}

	sel, err := decimate.New(cfg).Select(frame)
	if err != nil {
		return err
	}

	rowsOut := len(sel.Indices)
	if sel.ShortCircuited {
		rowsOut = sel.Table.Len()
	}
	logger := log.WithFields(log.Fields{
		"algorithm": cfg.Algorithm(),
		"width":     cfg.Width(),
		"rows_in":   frame.Len(),
		"rows_out":  rowsOut,
	})
	if sel.ShortCircuited {
		logger.Info("input fits within width, rows kept unchanged")
	} else {
		logger.Info("downsampled series")
	}

	if o.snapshotPath != "" {
		return o.writeSnapshot(sel)
	}

	out := sel.Table
	if !sel.ShortCircuited {
		if out, err = sel.Table.SelectRows(sel.Indices); err != nil {
			return err
		}
	}

	if o.output == "" {
		return writeFrame(stdout, out)
	}

	w, err := os.Create(o.output)
	if err != nil {
		return errors.Wrap(err, "cannot create output")
	}
	if err := writeFrame(w, out); err != nil {
		w.Close()
		return err
	}

	return errors.Wrap(w.Close(), "cannot close output")
}

func (o *runOptions) writeSnapshot(sel decimate.Selection) error {
	comp, err := format.ParseCompression(o.compression)
	if err != nil {
		return err
	}
	enc, err := parseIndexEncoding(o.indexEncoding)
	if err != nil {
		return err
	}

	yCol, err := sel.Table.Dimension(1)
	if err != nil {
		return err
	}

	snap, err := snapshot.FromTable(yCol.Name(), sel.Table, sel.Indices)
	if err != nil {
		return err
	}

	opts := []snapshot.EncoderOption{snapshot.WithCompression(comp), snapshot.WithIndexEncoding(enc)}
	if o.bigEndian {
		opts = append(opts, snapshot.WithBigEndian())
	}
	data, err := snapshot.Encode(snap, opts...)
	if err != nil {
		return errors.Wrap(err, "cannot encode snapshot")
	}

	if err := os.WriteFile(o.snapshotPath, data, 0o644); err != nil {
		return errors.Wrap(err, "cannot write snapshot")
	}

	log.WithFields(log.Fields{
		"path":        o.snapshotPath,
		"points":      snap.Len(),
		"compression": comp,
		"bytes":       len(data),
	}).Info("wrote snapshot")

	return nil
}

func parseIndexEncoding(name string) (format.EncodingType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw":
		return format.TypeRaw, nil
	case "", "delta":
		return format.TypeDelta, nil
	default:
		return 0, errors.Errorf("unknown index encoding %q", name)
	}
}
