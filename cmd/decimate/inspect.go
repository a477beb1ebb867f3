package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/decimate/compress"
	"github.com/arloliu/decimate/snapshot"
)

func newInspectCmd() *cobra.Command {
	var showPoints bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "print a summary of a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "cannot read snapshot")
			}

			return inspect(cmd.OutOrStdout(), data, showPoints)
		},
	}
	cmd.Flags().BoolVar(&showPoints, "points", false, "also print every point as x,y,index")

	return cmd
}

func inspect(w io.Writer, data []byte, showPoints bool) error {
	h, err := snapshot.ParseHeader(data)
	if err != nil {
		return err
	}
	snap, err := snapshot.Decode(data)
	if err != nil {
		return err
	}

	byteOrder := "little-endian"
	if h.IsBigEndian() {
		byteOrder = "big-endian"
	}
	yKind := "float64"
	if h.IsBoolY() {
		yKind = "bool"
	}

	fmt.Fprintf(w, "name:        %s\n", snap.Name)
	fmt.Fprintf(w, "version:     %d\n", h.Version)
	fmt.Fprintf(w, "points:      %d\n", h.Count)
	fmt.Fprintf(w, "y kind:      %s\n", yKind)
	fmt.Fprintf(w, "byte order:  %s\n", byteOrder)
	fmt.Fprintf(w, "indices:     %s\n", h.IndexEncoding)
	fmt.Fprintf(w, "compression: %s (%d -> %d bytes, ratio %.3f)\n",
		h.Compression, h.RawLen, h.StoredLen, compress.Ratio(int(h.RawLen), int(h.StoredLen)))
	fmt.Fprintf(w, "checksum:    0x%016x\n", h.Checksum)
	if n := snap.Len(); n > 0 {
		fmt.Fprintf(w, "x span:      %g .. %g\n", snap.X[0], snap.X[n-1])
		fmt.Fprintf(w, "rows:        %d .. %d\n", snap.Indices[0], snap.Indices[n-1])
	}

	if showPoints {
		for i := range snap.Len() {
			fmt.Fprintf(w, "%g,%g,%d\n", snap.X[i], snap.Y[i], snap.Indices[i])
		}
	}

	return nil
}
