package main

import (
	"fmt"

	"github.com/shaileshp0110/token-status-list/statuslist"
	"github.com/urfave/cli/v2"
)

var allFlag = &cli.BoolFlag{
	Name:  "all",
	Usage: "print every status in the list, one per line",
}

var decodeCmd = &cli.Command{
	Name:   "decode",
	Usage:  "parse a status list document and print a summary",
	Action: cliActionDecode,
	Flags:  []cli.Flag{formatFlag, inFlag, hexFlag, allFlag},
}

func cliActionDecode(cliCtx *cli.Context) error {
	list, err := parseDocument(cliCtx)
	if err != nil {
		return err
	}
	d, err := statuslist.NewDecoder(list)
	if err != nil {
		return err
	}
	w := cliCtx.App.Writer
	fmt.Fprintf(w, "bits: %d\n", list.BitsPerStatus())
	fmt.Fprintf(w, "statuses: %d\n", d.Len())
	if uri := list.AggregationURI(); uri != "" {
		fmt.Fprintf(w, "aggregation_uri: %s\n", uri)
	}
	if !cliCtx.Bool(allFlag.Name) {
		return nil
	}
	for i := uint64(0); i < d.Len(); i++ {
		s, err := d.StatusAt(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d: %s\n", i, s)
	}
	return nil
}
