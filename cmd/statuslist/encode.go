package main

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/shaileshp0110/token-status-list/statuslist"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	bitsFlag = &cli.UintFlag{
		Name:  "bits",
		Usage: "bits per status, one of 1, 2, 4 or 8",
		Value: 1,
	}
	aggregationURIFlag = &cli.StringFlag{
		Name:  "aggregation-uri",
		Usage: "URI under which this list is aggregated with related lists",
	}
)

var encodeCmd = &cli.Command{
	Name:      "encode",
	Usage:     "pack and compress statuses into a status list document",
	ArgsUsage: "[status ...]",
	Description: `Statuses are given as arguments or read from --in (whitespace or comma
separated). A status is a registry name (valid, invalid, suspended) or a
number.`,
	Action: cliActionEncode,
	Flags:  []cli.Flag{bitsFlag, formatFlag, inFlag, outFlag, aggregationURIFlag},
}

func cliActionEncode(cliCtx *cli.Context) error {
	width := cliCtx.Uint(bitsFlag.Name)
	if width > 255 {
		return errors.Wrapf(statuslist.ErrInvalidBitsPerStatus, "got %d", width)
	}
	bits, err := statuslist.ParseBitsPerStatus(uint8(width))
	if err != nil {
		return err
	}

	tokens := cliCtx.Args().Slice()
	if len(tokens) == 0 {
		data, err := readInput(cliCtx)
		if err != nil {
			return err
		}
		tokens = splitStatusTokens(string(data))
	}

	b, err := statuslist.NewBuilder(bits)
	if err != nil {
		return err
	}
	for _, token := range tokens {
		s, err := parseStatusToken(token)
		if err != nil {
			return err
		}
		if err := b.AddStatus(s); err != nil {
			return errors.Wrapf(err, "status %q", token)
		}
	}
	if uri := cliCtx.String(aggregationURIFlag.Name); uri != "" {
		if err := b.SetAggregationURI(uri); err != nil {
			return err
		}
	}
	list, err := b.Build()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"statuses": b.Len(),
		"bits":     bits,
	}).Debug("Encoded status list")
	return writeDocument(cliCtx, list)
}

// parseStatusToken maps a command line token to a status code. Registry
// names cover the common codes; anything else must be numeric (decimal, or
// hex with an 0x prefix).
func parseStatusToken(token string) (statuslist.Status, error) {
	switch strings.ToLower(token) {
	case "valid":
		return statuslist.StatusValid, nil
	case "invalid":
		return statuslist.StatusInvalid, nil
	case "suspended":
		return statuslist.StatusSuspended, nil
	}
	v, err := strconv.ParseUint(token, 0, 8)
	if err != nil {
		return 0, errors.Errorf("unknown status %q", token)
	}
	return statuslist.Status(v), nil
}

func splitStatusTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}
