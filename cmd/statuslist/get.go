package main

import (
	"fmt"

	"github.com/shaileshp0110/token-status-list/statuslist"
	"github.com/urfave/cli/v2"
)

var indexFlag = &cli.Uint64Flag{
	Name:     "index",
	Usage:    "index of the status to look up",
	Required: true,
}

var getCmd = &cli.Command{
	Name:   "get",
	Usage:  "look up a single status in a status list document",
	Action: cliActionGet,
	Flags:  []cli.Flag{formatFlag, inFlag, hexFlag, indexFlag},
}

func cliActionGet(cliCtx *cli.Context) error {
	list, err := parseDocument(cliCtx)
	if err != nil {
		return err
	}
	d, err := statuslist.NewDecoder(list)
	if err != nil {
		return err
	}
	s, err := d.StatusAt(cliCtx.Uint64(indexFlag.Name))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cliCtx.App.Writer, "%s (0x%02x)\n", s, uint8(s))
	return err
}
