package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/shaileshp0110/token-status-list/statuslist"
	"github.com/urfave/cli/v2"
)

const (
	formatJSON = "json"
	formatCBOR = "cbor"
)

// Flags shared by the commands that read or write wire documents.
var (
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "wire format of the document, json or cbor",
		Value: formatJSON,
	}
	inFlag = &cli.StringFlag{
		Name:  "in",
		Usage: "read input from this path instead of standard input",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "write the document to this path instead of standard output",
	}
	hexFlag = &cli.BoolFlag{
		Name:  "hex",
		Usage: "treat cbor input as a hex string rather than raw bytes",
	}
)

func readInput(cliCtx *cli.Context) ([]byte, error) {
	if path := cliCtx.String(inFlag.Name); path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, errors.Wrap(err, "could not read input file")
		}
		return data, nil
	}
	data, err := io.ReadAll(cliCtx.App.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "could not read standard input")
	}
	return data, nil
}

// parseDocument reads a status list document from the input source selected
// by the flags and parses it according to --format.
func parseDocument(cliCtx *cli.Context) (*statuslist.StatusList, error) {
	data, err := readInput(cliCtx)
	if err != nil {
		return nil, err
	}
	list := &statuslist.StatusList{}
	switch format := cliCtx.String(formatFlag.Name); format {
	case formatJSON:
		if err := list.UnmarshalJSON(bytes.TrimSpace(data)); err != nil {
			return nil, err
		}
	case formatCBOR:
		if cliCtx.Bool(hexFlag.Name) {
			data, err = hex.DecodeString(strings.TrimSpace(string(data)))
			if err != nil {
				return nil, errors.Wrap(err, "input is not a hex string")
			}
		}
		if err := list.UnmarshalCBOR(data); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
	return list, nil
}

// writeDocument serializes the list according to --format and writes it to
// --out or standard output. CBOR goes to files as raw bytes and to standard
// output hex encoded.
func writeDocument(cliCtx *cli.Context, list *statuslist.StatusList) error {
	format := cliCtx.String(formatFlag.Name)
	var data []byte
	var err error
	switch format {
	case formatJSON:
		data, err = list.MarshalJSON()
	case formatCBOR:
		data, err = list.MarshalCBOR()
	default:
		return errors.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	if out := cliCtx.String(outFlag.Name); out != "" {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return errors.Wrap(err, "could not write document")
		}
		log.WithField("path", out).Info("Wrote status list document")
		return nil
	}
	if format == formatCBOR {
		_, err = fmt.Fprintf(cliCtx.App.Writer, "%x\n", data)
		return err
	}
	_, err = fmt.Fprintf(cliCtx.App.Writer, "%s\n", data)
	return err
}
