package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shaileshp0110/token-status-list/statuslist"
	"github.com/urfave/cli/v2"
)

var inspectCmd = &cli.Command{
	Name:   "inspect",
	Usage:  "report size and compression statistics for a status list document",
	Action: cliActionInspect,
	Flags:  []cli.Flag{formatFlag, inFlag, hexFlag},
}

func cliActionInspect(cliCtx *cli.Context) error {
	list, err := parseDocument(cliCtx)
	if err != nil {
		return err
	}
	d, err := statuslist.NewDecoder(list)
	if err != nil {
		return err
	}
	compressed := len(list.Compressed())
	decompressed := len(d.Bytes())

	w := cliCtx.App.Writer
	fmt.Fprintf(w, "bits per status: %d\n", list.BitsPerStatus())
	fmt.Fprintf(w, "statuses: %d\n", d.Len())
	fmt.Fprintf(w, "compressed size: %s\n", humanize.Bytes(uint64(compressed)))
	fmt.Fprintf(w, "decompressed size: %s\n", humanize.Bytes(uint64(decompressed)))
	if compressed > 0 {
		fmt.Fprintf(w, "compression ratio: %.2fx\n", float64(decompressed)/float64(compressed))
	}
	if uri := list.AggregationURI(); uri != "" {
		fmt.Fprintf(w, "aggregation_uri: %s\n", uri)
	}
	return nil
}
